package whmcsdomain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FlexInt aceita inteiros enviados como número ou como texto ("42").
// Texto vazio, null e valores ilegíveis viram zero, sem descartar o registro.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt(parseFlexInt(string(data)))
	return nil
}

func parseFlexInt(data string) int64 {
	raw := strings.Trim(strings.TrimSpace(data), `"`)

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}

	floatValue, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(floatValue) || math.IsInf(floatValue, 0) {
		return 0
	}
	return int64(floatValue)
}

// Int retorna o valor como int
func (f FlexInt) Int() int {
	return int(f)
}

// FlexString aceita texto ou número e guarda a representação textual
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	*f = FlexString(trimmed)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// OneOrMany normaliza campos que o WHMCS envia como objeto único quando há
// exatamente um registro e como lista nos demais casos.
type OneOrMany[T any] []T

func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")), bytes.Equal(trimmed, []byte(`""`)):
		*o = OneOrMany[T]{}
		return nil
	case trimmed[0] == '[':
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		if many == nil {
			many = []T{}
		}
		*o = many
		return nil
	case trimmed[0] == '{':
		var one T
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		*o = OneOrMany[T]{one}
		return nil
	default:
		return fmt.Errorf("whmcs: unexpected record payload %q", truncate(string(trimmed), 40))
	}
}

// isObject indica se o payload é um objeto JSON; containers vazios às vezes chegam como [] ou ""
func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
