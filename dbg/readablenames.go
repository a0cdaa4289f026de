package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into readable names. It flagrantly leaks memory but
// generates the names lazily, so it's not a problem unless you're actually
// using it. This is helpful for telling history nodes and mesh records apart
// in debug output.
//
// Names are handed out in order of demand, so the same name doesn't refer to
// the same thing between runs.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
}

// Readable name for a pointer. Nil pointers are "Ø".
func Name(obj interface{}) string {
	value := reflect.ValueOf(obj)
	if !value.IsValid() || (value.Kind() == reflect.Ptr && value.IsNil()) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

