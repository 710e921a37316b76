package calculator

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName имя кодека в реестре grpc. Клиент должен запрашивать его
// через grpc.CallContentSubtype(CodecName).
const CodecName = "json"

// jsonCodec сериализует сообщения сервиса в JSON. Сообщения сервиса —
// обычные структуры, а не protobuf, поэтому кодек по умолчанию для
// них не подходит.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	// Сервер выбирает кодек по content-subtype запроса, поэтому
	// достаточно зарегистрировать его в общем реестре
	encoding.RegisterCodec(jsonCodec{})
}
