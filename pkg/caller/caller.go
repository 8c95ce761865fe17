package caller

import (
	"runtime"
	"strings"
)

// Name returns the name of the function or method that calls it, for
// use as a span name:
//
//	func (c *Cache) Get(...) {
//		_, span := tracer.Start(ctx, caller.Name()) // "Cache.Get"
//		...
//	}
//
// An optional offset walks further up the stack: Name(1) names the
// caller's caller.
func Name(offsetOpt ...int) string {
	offset := 1
	if len(offsetOpt) > 0 {
		offset += offsetOpt[0]
	}

	pc, _, _, ok := runtime.Caller(offset)
	details := runtime.FuncForPC(pc)
	if !ok || details == nil {
		return ""
	}

	parts := strings.Split(details.Name(), ".")

	// called from an anonymous function: drop the trailing "funcN"
	if len(parts) > 0 && strings.HasPrefix(parts[len(parts)-1], "func") {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return ""
	}

	// a method: join the receiver type and the method name
	if len(parts) > 2 {
		typeName := strings.Trim(parts[len(parts)-2], "(*)")
		return typeName + "." + parts[len(parts)-1]
	}

	return parts[len(parts)-1]
}
