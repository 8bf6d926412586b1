package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value",
			args:     []string{"-a", ":8080", "-x", "junk"},
			allowed:  []string{"-a"},
			expected: []string{"-a", ":8080"},
		},
		{
			name:     "equals form",
			args:     []string{"--config=conf.json", "-d=dsn", "-z=skip"},
			allowed:  []string{"--config", "-d"},
			expected: []string{"--config=conf.json", "-d=dsn"},
		},
		{
			name:     "flag without value followed by another flag",
			args:     []string{"-v", "-a", ":8080"},
			allowed:  []string{"-v", "-a"},
			expected: []string{"-v", "-a", ":8080"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "x"},
			allowed:  []string{"-b"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "conf.json", "-a", ":8080"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"cmd", "-a", ":8080"}
	assert.Equal(t, "", JsonConfigFlags())

	os.Args = []string{"cmd", "--config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())
}
