// Package stdheader classifies header names as standard library headers.
package stdheader

import (
	"maps"
	"slices"
)

var standard = setOf(
	// C++20
	"concepts", "coroutine", "version", "compare", "source_location", "format",
	"span", "ranges", "bit", "numbers", "syncstream", "stop_token", "semaphore",
	"latch", "barrier",
	// C++17
	"any", "optional", "variant", "memory_resource", "string_view", "charconv",
	"execution", "filesystem",
	// C++14
	"shared_mutex",
	// C++11
	"typeindex", "type_traits", "chrono", "initializer_list", "tuple",
	"scoped_allocator", "cstdint", "cinttypes", "system_error", "cuchar", "array",
	"forward_list", "unordered_set", "unordered_map", "random", "ratio", "cfenv",
	"codecvt", "regex", "atomic", "thread", "mutex", "future", "condition_variable",
	// C++98
	"cstdlib", "csignal", "csetjmp", "cstdarg", "typeinfo", "bitset", "functional",
	"utility", "ctime", "cstddef", "new", "memory", "climits", "cfloat", "exception",
	"stdexcept", "cassert", "cerrno", "cctype", "cwctype", "cstring", "cwchar",
	"string", "vector", "deque", "list", "set", "map", "stack", "queue", "iterator",
	"algorithm", "cmath", "complex", "valarray", "numeric", "locale", "clocale",
	"iosfwd", "ios", "istream", "ostream", "iostream", "fstream", "sstream",
	"strstream", "iomanip", "streambuf", "cstdio",
	// C11
	"stdalign.h", "stdatomic.h", "stdnoreturn.h", "threads.h", "uchar.h",
	// C99
	"complex.h", "fenv.h", "inttypes.h", "stdbool.h", "stdint.h", "tgmath.h",
	// C95
	"iso646.h", "wchar.h", "wctype.h",
	// C89
	"assert.h", "ctype.h", "errno.h", "float.h", "limits.h", "locale.h", "math.h",
	"setjmp.h", "signal.h", "stdarg.h", "stddef.h", "stdio.h", "stdlib.h",
	"string.h", "time.h",
)

func setOf(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// IsStdHeader reports whether name, a bare file name without directories,
// is a standard C or C++ library header. The match is exact and case-sensitive.
func IsStdHeader(name string) bool {
	_, ok := standard[name]
	return ok
}

// Names returns the known standard header names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(standard))
}
