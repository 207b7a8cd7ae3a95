package rpcparam

import (
	"encoding/json"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of method description errors.
var Error = errs.Class("rpcparam")

// Argument is one entry of a method's inputs.
type Argument struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Method is a contract method description as found in an ABI.
type Method struct {
	Name   string     `json:"name"`
	Inputs []Argument `json:"inputs"`
}

// ParseMethod decodes a single ABI method entry.
func ParseMethod(data []byte) (m Method, err error) {
	defer Error.WrapP(&err)

	err = json.Unmarshal(data, &m)
	if err != nil {
		return m, oops.Trace(err)
	}

	if m.Name == "" {
		return m, errs.New("method has no name")
	}

	return m, nil
}

// Signature returns name(type1,type2,...). A name that already carries an
// argument list is returned as is. Inputs without a type are skipped.
func (m Method) Signature() string {
	if strings.Index(m.Name, "(") > 0 {
		return m.Name
	}

	types := make([]string, 0, len(m.Inputs))
	for _, in := range m.Inputs {
		if in.Type == "" {
			continue
		}

		types = append(types, in.Type)
	}

	return m.Name + "(" + strings.Join(types, ",") + ")"
}
