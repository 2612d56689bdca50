// packbuf reads and writes flat structs as little-endian binary using
// reflection. Field order is the wire order.
package packbuf

import (
	"encoding/binary"
	"io"
	"math"
	"reflect"

	"github.com/pkg/errors"
)

const (
	// maxStringSize is the largest string that fits the uint16 length prefix
	maxStringSize = math.MaxUint16

	// maxSliceLen stops a corrupt length prefix from allocating the world
	maxSliceLen = 1 << 16
)

var ErrUnsupported = errors.New("packbuf: unsupported type")

// Read fills the struct pointed to by data from r.
func Read(r io.Reader, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.Wrapf(ErrUnsupported, "Read needs a pointer to a struct, got %T", data)
	}
	return readStruct(r, v.Elem())
}

func readStruct(r io.Reader, v reflect.Value) error {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			return errors.Wrapf(ErrUnsupported, "unexported field %s.%s", v.Type(), v.Type().Field(i).Name)
		}
		if err := readValue(r, field); err != nil {
			return errors.Wrapf(err, "field %s.%s", v.Type(), v.Type().Field(i).Name)
		}
	}
	return nil
}

func readValue(r io.Reader, field reflect.Value) error {
	switch field.Kind() {
	case reflect.Struct:
		return readStruct(r, field)
	case reflect.Slice:
		var sliceLen int32
		if err := binary.Read(r, binary.LittleEndian, &sliceLen); err != nil {
			return err
		}
		if sliceLen < 0 || sliceLen > maxSliceLen {
			return errors.Errorf("slice length %d out of range", sliceLen)
		}
		if sliceLen == 0 {
			// leave as nil
			return nil
		}
		if field.Type().Elem().Kind() == reflect.Uint8 {
			value := make([]byte, sliceLen)
			if _, err := io.ReadFull(r, value); err != nil {
				return err
			}
			field.SetBytes(value)
			return nil
		}
		slice := reflect.MakeSlice(field.Type(), int(sliceLen), int(sliceLen))
		for i := 0; i < int(sliceLen); i++ {
			if err := readValue(r, slice.Index(i)); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	case reflect.Bool:
		var value byte
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetBool(value != 0)
		return nil
	case reflect.Uint8:
		var value uint8
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetUint(uint64(value))
		return nil
	case reflect.Uint16:
		var value uint16
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetUint(uint64(value))
		return nil
	case reflect.Uint32:
		var value uint32
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetUint(uint64(value))
		return nil
	case reflect.Uint64:
		var value uint64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetUint(value)
		return nil
	case reflect.Int16:
		var value int16
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetInt(int64(value))
		return nil
	case reflect.Int32:
		var value int32
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetInt(int64(value))
		return nil
	case reflect.Int, reflect.Int64:
		// "int" is written as int64 so 32-bit and 64-bit builds agree
		var value int64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetInt(value)
		return nil
	case reflect.Float32:
		var value float32
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetFloat(float64(value))
		return nil
	case reflect.Float64:
		var value float64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		field.SetFloat(value)
		return nil
	case reflect.String:
		var stringSize uint16
		if err := binary.Read(r, binary.LittleEndian, &stringSize); err != nil {
			return err
		}
		if stringSize == 0 {
			field.SetString("")
			return nil
		}
		stringData := make([]byte, stringSize)
		if _, err := io.ReadFull(r, stringData); err != nil {
			return err
		}
		field.SetString(string(stringData))
		return nil
	}
	return errors.Wrapf(ErrUnsupported, "cannot read %s", field.Type())
}
