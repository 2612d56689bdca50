package packbuf

import (
	"encoding/binary"
	"io"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Write encodes the struct pointed to by data into w.
func Write(w io.Writer, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.Wrapf(ErrUnsupported, "Write needs a pointer to a struct, got %T", data)
	}
	return writeStruct(w, v.Elem())
}

func writeStruct(w io.Writer, v reflect.Value) error {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			return errors.Wrapf(ErrUnsupported, "unexported field %s.%s", v.Type(), v.Type().Field(i).Name)
		}
		if err := writeValue(w, field); err != nil {
			return errors.Wrapf(err, "field %s.%s", v.Type(), v.Type().Field(i).Name)
		}
	}
	return nil
}

func writeValue(w io.Writer, field reflect.Value) error {
	switch field.Kind() {
	case reflect.Struct:
		return writeStruct(w, field)
	case reflect.Slice:
		sliceLen := field.Len()
		if sliceLen > maxSliceLen {
			return errors.New("cannot write slice longer than " + strconv.Itoa(maxSliceLen))
		}
		if err := binary.Write(w, binary.LittleEndian, int32(sliceLen)); err != nil {
			return err
		}
		if field.Type().Elem().Kind() == reflect.Uint8 {
			_, err := w.Write(field.Bytes())
			return err
		}
		for i := 0; i < sliceLen; i++ {
			if err := writeValue(w, field.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Bool:
		var b byte
		if field.Bool() {
			b = 1
		}
		return binary.Write(w, binary.LittleEndian, b)
	case reflect.Uint8:
		return binary.Write(w, binary.LittleEndian, uint8(field.Uint()))
	case reflect.Uint16:
		return binary.Write(w, binary.LittleEndian, uint16(field.Uint()))
	case reflect.Uint32:
		return binary.Write(w, binary.LittleEndian, uint32(field.Uint()))
	case reflect.Uint64:
		return binary.Write(w, binary.LittleEndian, field.Uint())
	case reflect.Int16:
		return binary.Write(w, binary.LittleEndian, int16(field.Int()))
	case reflect.Int32:
		return binary.Write(w, binary.LittleEndian, int32(field.Int()))
	case reflect.Int, reflect.Int64:
		return binary.Write(w, binary.LittleEndian, field.Int())
	case reflect.Float32:
		return binary.Write(w, binary.LittleEndian, float32(field.Float()))
	case reflect.Float64:
		return binary.Write(w, binary.LittleEndian, field.Float())
	case reflect.String:
		s := field.String()
		if len(s) > maxStringSize {
			return errors.New("cannot write string larger than " + strconv.Itoa(maxStringSize))
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
			return err
		}
		_, err := io.WriteString(w, s)
		return err
	}
	return errors.Wrapf(ErrUnsupported, "cannot write %s", field.Type())
}
