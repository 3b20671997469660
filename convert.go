package opts

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Scalar is the set of types an option value can take. Types derived from
// these, like Path, are supported too. A time.Duration is scanned with
// time.ParseDuration rather than as an integer.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~string
}

// Path is the type of options taking a file system path. The argument is
// taken as-is.
type Path string

// convert converts value to a T. Numbers are parsed in base 10 with the
// functions of the strconv package and must use the whole value. Only an
// optional minus sign, digits and, for floating point numbers, a decimal
// point and an exponent are accepted: no plus sign, no base prefix, no
// underscores, no infinity and no NaN.
func convert[T Scalar](value string) (T, error) {
	var t T
	if d, ok := any(&t).(*time.Duration); ok {
		v, err := time.ParseDuration(value)
		if err != nil {
			return t, err
		}
		*d = v
		return t, nil
	}
	var (
		i   int64
		u   uint64
		f   float64
		err error
	)
	v := reflect.ValueOf(&t).Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if err = decimal("ParseInt", value); err != nil {
			break
		}
		if i, err = strconv.ParseInt(value, 10, v.Type().Bits()); err == nil {
			v.SetInt(i)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if err = decimal("ParseUint", value); err != nil {
			break
		}
		if u, err = strconv.ParseUint(value, 10, v.Type().Bits()); err == nil {
			v.SetUint(u)
		}
	case reflect.Float32, reflect.Float64:
		if err = decimal("ParseFloat", value); err != nil {
			break
		}
		if f, err = strconv.ParseFloat(value, v.Type().Bits()); err != nil {
			break
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			err = syntaxError("ParseFloat", value)
			break
		}
		v.SetFloat(f)
	default:
		panic(fmt.Errorf("bug: unsupported option type %v", v.Type()))
	}
	return t, err
}

// decimal returns a syntax error if value has a plus sign, a base prefix or
// underscores, which the strconv functions accept in some cases.
func decimal(fn, value string) error {
	s := strings.TrimPrefix(value, "-")
	if strings.HasPrefix(s, "+") || strings.ContainsRune(s, '_') ||
		len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return syntaxError(fn, value)
	}
	return nil
}

func syntaxError(fn, value string) error {
	return &strconv.NumError{Func: fn, Num: value, Err: strconv.ErrSyntax}
}

// format returns the text representation of t. Converting the result gives
// back t.
func format[T Scalar](t T) string {
	if d, ok := any(t).(time.Duration); ok {
		return d.String()
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits())
	}
	panic(fmt.Errorf("bug: unsupported option type %v", v.Type()))
}

// typeName returns the name of T for error messages.
func typeName[T Scalar]() string {
	var t T
	return reflect.TypeOf(t).String()
}
