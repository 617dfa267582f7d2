// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oracle

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/ksyusha123/logica/types"
)

// FromMessageDescriptor builds Columns for a predicate whose single
// argument is a protobuf message, reporting one column per message
// field. This is grounded on the teacher's proto2struct.ProtoToStruct /
// ProtoValueToConstant (google/mangle proto2struct/proto2struct.go),
// which convert *values* of a descriptor's kind into Mangle constants;
// here we convert the descriptor's *kind* into a lattice Type instead,
// since the oracle deals in column types, not runtime values.
func FromMessageDescriptor(md protoreflect.MessageDescriptor) (Columns, error) {
	fields := md.Fields()
	cols := make(Columns, fields.Len())
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		fieldType, err := protoFieldType(fd)
		if err != nil {
			return nil, fmt.Errorf("field %s of %s: %w", fd.Name(), md.FullName(), err)
		}
		cols[string(fd.Name())] = fieldType
	}
	return cols, nil
}

// protoFieldType maps one proto field descriptor to a lattice Type,
// honoring repeated/map cardinality before dispatching on Kind.
func protoFieldType(fd protoreflect.FieldDescriptor) (types.Type, error) {
	if fd.IsMap() {
		valueType, err := protoScalarType(fd.MapValue())
		if err != nil {
			return nil, err
		}
		// The lattice has no dedicated map type; a proto map is modeled as
		// a list of open records, each with a single "value" field of
		// valueType. The map's key type is not represented.
		return types.NewListType(types.NewRecordType(map[string]types.Type{"value": valueType}, types.Open)), nil
	}
	scalar, err := protoScalarType(fd)
	if err != nil {
		return nil, err
	}
	if fd.IsList() {
		return types.NewListType(scalar), nil
	}
	return scalar, nil
}

// protoScalarType maps a single (non-repeated) field's kind to a
// lattice Type, following the same Kind switch as
// proto2struct.ProtoValueToConstant.
func protoScalarType(fd protoreflect.FieldDescriptor) (types.Type, error) {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return types.BoolType{}, nil
	case protoreflect.Int32Kind, protoreflect.Int64Kind,
		protoreflect.Sint32Kind, protoreflect.Sint64Kind,
		protoreflect.Uint32Kind, protoreflect.Uint64Kind,
		protoreflect.Fixed32Kind, protoreflect.Fixed64Kind,
		protoreflect.Sfixed32Kind, protoreflect.Sfixed64Kind,
		protoreflect.FloatKind, protoreflect.DoubleKind:
		return types.NumberType{}, nil
	case protoreflect.StringKind, protoreflect.BytesKind:
		return types.StringType{}, nil
	case protoreflect.EnumKind:
		return types.StringType{}, nil
	case protoreflect.MessageKind, protoreflect.GroupKind:
		cols, err := FromMessageDescriptor(fd.Message())
		if err != nil {
			return nil, err
		}
		return types.NewRecordType(cols, types.Closed), nil
	default:
		return nil, fmt.Errorf("unsupported proto kind: %v", fd.Kind())
	}
}
