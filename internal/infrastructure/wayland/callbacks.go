//go:build linux

package wayland

import (
	"sync"
	"unsafe"
)

// callbackMap maps Wayland proxies to the Go objects that own them. C
// listeners receive the proxy pointer as user data and look the owner up.
var callbackMap sync.Map

func callbackStore(key unsafe.Pointer, owner any) {
	callbackMap.Store(key, owner)
}

func callbackDelete(key unsafe.Pointer) {
	callbackMap.Delete(key)
}

func callbackLoad(key unsafe.Pointer) any {
	owner, _ := callbackMap.Load(key)
	return owner
}
