package progress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_TTY(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, "Building report", 2, true)

	p.Step("profile")
	p.Step("officers")
	p.Done()

	out := buf.String()
	assert.Contains(t, out, "\rBuilding report... 1/2 profile")
	assert.Contains(t, out, "\rBuilding report... 2/2 officers")
	assert.Equal(t, 2, p.Current())
}

func TestProgress_NotTTYIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, "Building report", 2, false)

	p.Step("profile")
	p.Done()

	assert.Empty(t, buf.String())
	assert.Equal(t, 1, p.Current())
}

func TestProgress_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, "x", 50, true)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Step("s")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, p.Current())
}
