package log

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"
)

func TestLoggerOutput(t *testing.T) {
	buf := bytes.Buffer{}
	l := New(0, &buf, "TEST", INFO)

	l.Infof("hello %d", 42)

	got := buf.String()
	for _, want := range []string{"[INFO ]", "[TEST]", "hello 42"} {
		if !strings.Contains(got, want) {
			t.Errorf("Infof() wrote %#v, missing %#v", got, want)
		}
	}

	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Infof() wrote %#v, want a trailing newline", got)
	}
}

func TestLoggerMinLevel(t *testing.T) {
	buf := bytes.Buffer{}
	l := New(0, &buf, "", WARN)

	l.Debugf("dropped")
	l.Infof("dropped")

	if buf.Len() != 0 {
		t.Errorf("below-minimum levels wrote %#v, want nothing", buf.String())
	}

	l.Warnf("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("Warnf() wrote %#v, want the message", buf.String())
	}
}

func BenchmarkLoggerInfof(b *testing.B) {
	l := New(FTimestamp, ioutil.Discard, "test", 0)
	for i := 0; i < b.N; i++ {
		l.Infof("test")
	}
}
