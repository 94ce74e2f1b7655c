package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

// applyEnv overrides every `env`-tagged field of the struct pointed to by
// target whose variable is present in the environment. Nested structs are
// walked; the dotted field path is reported on parse errors.
func applyEnv(target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config target must be a struct pointer, got %T", target)
	}
	return walkEnv(v.Elem(), "")
}

func walkEnv(v reflect.Value, path string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if path != "" {
			name = path + "." + sf.Name
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Struct && fv.Type() != durationType {
			if err := walkEnv(fv, name); err != nil {
				return err
			}
			continue
		}

		key, ok := sf.Tag.Lookup("env")
		if !ok || key == "" {
			continue
		}
		raw, set := os.LookupEnv(key)
		if !set {
			continue
		}
		if err := assign(fv, raw); err != nil {
			return fmt.Errorf("%s (%s=%q): %w", name, key, raw, err)
		}
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// assign parses raw into the field's kind.
func assign(fv reflect.Value, raw string) error {
	if fv.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		fv.SetInt(int64(d))
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	default:
		return fmt.Errorf("unsupported kind %s", fv.Kind())
	}
	return nil
}
