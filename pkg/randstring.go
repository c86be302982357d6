package pkg

import "math/rand"

// no easily-confused characters in join codes
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandString makes an n-character game join code.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
