package models

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"gorm.io/gorm/schema"
)

func init() {
	schema.RegisterSerializer("jsonnumber", JSONNumberSerializer{})
}

// JSONNumberSerializer stores a field as JSON like gorm's json serializer but
// decodes numbers as json.Number, so integers wider than 53 bits survive a
// round trip untouched.
type JSONNumberSerializer struct{}

func (JSONNumberSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue interface{}) error {
	fieldValue := reflect.New(field.FieldType)

	if dbValue != nil {
		var raw []byte
		switch v := dbValue.(type) {
		case []byte:
			raw = v
		case string:
			raw = []byte(v)
		default:
			return fmt.Errorf("failed to unmarshal JSON value: %#v", dbValue)
		}

		if len(raw) > 0 {
			decoder := json.NewDecoder(bytes.NewReader(raw))
			decoder.UseNumber()
			if err := decoder.Decode(fieldValue.Interface()); err != nil {
				return fmt.Errorf("failed to unmarshal JSON value: %w", err)
			}
		}
	}

	field.ReflectValueOf(ctx, dst).Set(fieldValue.Elem())
	return nil
}

func (JSONNumberSerializer) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue interface{}) (interface{}, error) {
	result, err := json.Marshal(fieldValue)
	if err != nil {
		return nil, err
	}
	return string(result), nil
}
