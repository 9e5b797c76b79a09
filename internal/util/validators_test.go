package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernamePattern(t *testing.T) {
	valid := []string{"alice", "bob_99", "ABC", "user_name_with_underscores"}
	for _, name := range valid {
		assert.True(t, usernamePattern.MatchString(name), name)
	}

	invalid := []string{"ab", "", "has space", "has-dash", "名字", "waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaytoolong"}
	for _, name := range invalid {
		assert.False(t, usernamePattern.MatchString(name), name)
	}
}
