package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with value",
			args:    []string{"-a", "http://x/", "-t", "10"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://x/"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"-config=/tmp/cfg.json", "-a", "http://x/"},
			allowed: []string{"-config"},
			want:    []string{"-config=/tmp/cfg.json"},
		},
		{
			name:    "drops everything else",
			args:    []string{"-x", "1", "-y=2"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "allowed flag without value",
			args:    []string{"-a", "-t", "10"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-a", "-t", "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "/tmp/a.json", "-t", "10"}
	assert.Equal(t, "/tmp/a.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-config=/tmp/b.json"}
	assert.Equal(t, "/tmp/b.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-t", "10"}
	assert.Equal(t, "", JsonConfigFlags())
}
