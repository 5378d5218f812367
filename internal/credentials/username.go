// Package credentials generates kid-friendly login names for child profiles.
package credentials

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Word lists for generating kid-friendly usernames
var adjectives = []string{
	"happy", "sunny", "brave", "bright", "cool", "swift", "clever", "jolly",
	"mighty", "super", "star", "wild", "funny", "lucky", "magic", "bouncy",
	"cheerful", "daring", "eager", "flying", "gentle", "hyper", "jazzy", "kindly",
	"lively", "merry", "noble", "perky", "quick", "royal", "snappy", "turbo",
	"zippy", "awesome", "bold", "cosmic", "dynamic", "epic", "fantastic", "groovy",
}

var nouns = []string{
	"dragon", "tiger", "eagle", "dolphin", "panda", "lion", "wolf", "bear",
	"fox", "hawk", "shark", "phoenix", "unicorn", "rocket", "ninja", "wizard",
	"knight", "pirate", "robot", "astronaut", "hero", "champion", "explorer", "ranger",
	"deer", "captain", "genius", "comet", "thunder", "lightning", "tornado", "blizzard",
	"flame", "storm", "owl", "otter", "koala", "turtle", "falcon", "racer",
}

// GenerateUsername generates a random username in the format "adjective-noun"
func GenerateUsername() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return adjective + "-" + noun, nil
}

// ErrUsernamesExhausted is returned when no free username could be found
var ErrUsernamesExhausted = errors.New("no free username found")

// maxUsernameAttempts bounds the random draws before falling back to a numeric suffix
const maxUsernameAttempts = 20

// UniqueUsername draws usernames until taken reports a free one.
// After maxUsernameAttempts collisions it appends a number to the last draw.
func UniqueUsername(taken func(username string) (bool, error)) (string, error) {
	var username string
	for i := 0; i < maxUsernameAttempts; i++ {
		var err error
		username, err = GenerateUsername()
		if err != nil {
			return "", err
		}
		exists, err := taken(username)
		if err != nil {
			return "", err
		}
		if !exists {
			return username, nil
		}
	}

	for suffix := 2; suffix < 100; suffix++ {
		candidate := fmt.Sprintf("%s-%d", username, suffix)
		exists, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrUsernamesExhausted
}

// randomElement picks an element using crypto/rand
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", errors.New("empty word list")
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
