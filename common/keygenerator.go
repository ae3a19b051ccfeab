package common

import (
	"fmt"
	"math/rand"
	"time"
)

// Seed used for random # generation.
var seededRand *rand.Rand = rand.New(
	rand.NewSource(time.Now().UnixNano()))

var orderedStrCount = 0

// Generating random string with following charset
const charset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func stringWithCharset(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}

// MakeRandString -- Makes a random string with given prefix and random
// suffix of specified length.
func MakeRandString(pfx string, length int) string {
	return fmt.Sprintf("%s_%s", pfx, stringWithCharset(length, charset))
}

func makeOrderedString(pfx string, idx int) string {
	return fmt.Sprintf("%s.key_%d", pfx, idx)
}

var int64Count = 0

// KeyType - Type of key to generate.
type KeyType int

const (
	// RandI64Type -- decimal form of a random 63 bit int
	RandI64Type KeyType = 1
	// OrderedI64Type - decimal form of a monotonically increasing int.
	OrderedI64Type = 2
	// RandStrType - random string.
	RandStrType = 3
	// OrderedStrType - string with an ordered int suffix.
	OrderedStrType = 4
)

// Generate -- Generate a trie key of given type. Not safe for concurrent use.
func Generate(kt KeyType, pfx string) string {
	switch kt {
	case RandI64Type:
		return fmt.Sprintf("%d", seededRand.Int63())
	case RandStrType:
		return MakeRandString(pfx, 16)
	case OrderedStrType:
		orderedStrCount++
		return makeOrderedString(pfx, orderedStrCount)
	case OrderedI64Type:
		int64Count++
		return fmt.Sprintf("%d", int64Count)
	}
	return ""
}
