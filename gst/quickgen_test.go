package gst

import (
	"math/rand"
	"reflect"
)

// smallWord is a short lowercase string used as a testing/quick generator so
// property tests exercise realistic, bounded inputs instead of arbitrary
// byte strings.
type smallWord string

const smallWordAlphabet = "abc"

func (smallWord) Generate(rnd *rand.Rand, size int) reflect.Value {
	n := rnd.Intn(size + 1)
	if n > 12 {
		n = 12
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = smallWordAlphabet[rnd.Intn(len(smallWordAlphabet))]
	}
	return reflect.ValueOf(smallWord(b))
}
