// libclipreg exposes the register store to a host GUI process as a C shared
// library:
//
//	go build -buildmode=c-shared -o libclipreg.so ./cmd/libclipreg
//
// Every entry point is safe to call from any host thread; operations are
// serialized by the Manager's lock. Handles from clipboard_manager_new stay
// valid until passed to clipboard_manager_destroy. Strings returned by the
// library are malloc'd and must be released exactly once with
// clipboard_manager_free_string.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

//export clipboard_manager_new
func clipboard_manager_new() C.uintptr_t {
	return C.uintptr_t(newManager())
}

//export clipboard_manager_destroy
func clipboard_manager_destroy(h C.uintptr_t) {
	destroyManager(uintptr(h))
}

//export clipboard_manager_add_register
func clipboard_manager_add_register(h C.uintptr_t, name, shortcut *C.char) C.int {
	m := derefManager(uintptr(h))
	return cbool(m.AddRegister(goString(name), goString(shortcut)))
}

//export clipboard_manager_update_register_content
func clipboard_manager_update_register_content(h C.uintptr_t, name, content *C.char) C.int {
	m := derefManager(uintptr(h))
	return cbool(m.UpdateContent(goString(name), goString(content)))
}

//export clipboard_manager_get_register_content
func clipboard_manager_get_register_content(h C.uintptr_t, name *C.char) *C.char {
	content, ok := derefManager(uintptr(h)).Content(goString(name))
	if !ok || !cstringable(content) {
		return nil
	}
	return C.CString(content)
}

//export clipboard_manager_remove_register
func clipboard_manager_remove_register(h C.uintptr_t, name *C.char) C.int {
	return cbool(derefManager(uintptr(h)).RemoveRegister(goString(name)))
}

//export clipboard_manager_update_shortcut
func clipboard_manager_update_shortcut(h C.uintptr_t, name, shortcut *C.char) C.int {
	m := derefManager(uintptr(h))
	return cbool(m.UpdateShortcut(goString(name), goString(shortcut)))
}

//export clipboard_manager_get_all_registers
func clipboard_manager_get_all_registers(h C.uintptr_t) *C.char {
	return C.CString(derefManager(uintptr(h)).RegistersJSON())
}

//export clipboard_manager_free_string
func clipboard_manager_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// goString copies an incoming C string. NULL is a host programming error
// and panics; invalid UTF-8 degrades to "".
func goString(s *C.char) string {
	if s == nil {
		panic("clipreg: nil string argument")
	}
	return sanitizeUTF8(C.GoString(s))
}

func cbool(ok bool) C.int {
	if ok {
		return 1
	}
	return 0
}

// main never runs in the c-shared build; as a plain binary the package just
// identifies itself.
func main() {
	fmt.Println("Clipboard Manager Library loaded")
}
