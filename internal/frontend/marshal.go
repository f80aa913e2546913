package frontend

import (
	"encoding/json"

	"github.com/nccat/nccat/internal/cast"
)

func marshalProgram(prog *cast.Program) ([]byte, error) {
	return json.Marshal(prog)
}
