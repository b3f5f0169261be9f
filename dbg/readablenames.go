package dbg

import (
	"fmt"
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts pointers into random readable names, so that areas and other
// graph nodes are easy to tell apart in logs. Names are handed out lazily and
// never forgotten, so it leaks memory in proportion to the number of distinct
// objects named. That's fine for debugging output.

var (
	mu    sync.Mutex
	memo  = make(map[interface{}]string)
	title = cases.Title(language.English)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title.String(petname.Adjective()), title.String(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
