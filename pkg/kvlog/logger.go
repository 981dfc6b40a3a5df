// Package kvlog writes flat key/value events, one per line.
package kvlog

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"
)

type Logger interface {
	KV(string, string) Logger
	KVf(string, float64) Logger
	KVi(string, int) Logger
	Event(string)
}

const mutelog = mutelogger(0)

func LogMute() Logger { return mutelog }

func LogJSON(w io.Writer) Logger {
	return &kvlogger{
		encoder: newEncoder(w, func(buf *bytes.Buffer, keys, values []string) {
			buf.WriteRune('{')
			for i, k := range keys {
				if i != 0 {
					buf.WriteRune(',')
				}
				buf.WriteString(strconv.Quote(k))
				buf.WriteRune(':')
				buf.WriteString(strconv.Quote(values[i]))
			}
			buf.WriteString("}\n")
		}),
	}
}

func LogPretty(w io.Writer) Logger {
	return &kvlogger{
		encoder: newEncoder(w, func(buf *bytes.Buffer, keys, values []string) {
			for i, k := range keys {
				if i != 0 {
					buf.WriteString("\t")
				}
				buf.WriteString(k)
				buf.WriteRune('=')
				buf.WriteString(strconv.Quote(values[i]))
			}
			buf.WriteRune('\n')
		}),
	}
}

// ByFormat returns the logger for a format name, "json" or "pretty".
func ByFormat(format string, w io.Writer) (Logger, error) {
	switch format {
	case "json":
		return LogJSON(w), nil
	case "pretty", "":
		return LogPretty(w), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func newEncoder(w io.Writer, format func(buf *bytes.Buffer, keys, values []string)) func(keys, values []string) {
	var mu sync.Mutex
	bufpool := sync.Pool{
		New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 0, 1<<10))
		},
	}
	return func(keys, values []string) {
		buf := bufpool.Get().(*bytes.Buffer)
		buf.Reset()
		format(buf, keys, values)
		mu.Lock()
		io.Copy(w, buf)
		mu.Unlock()
		bufpool.Put(buf)
	}
}

type kvlogger struct {
	encoder func(keys, values []string)
	keys    []string
	values  []string
}

func (log *kvlogger) KV(k, v string) Logger {
	keys := make([]string, len(log.keys), len(log.keys)+1)
	copy(keys, log.keys)
	values := make([]string, len(log.values), len(log.values)+1)
	copy(values, log.values)
	return &kvlogger{
		encoder: log.encoder,
		keys:    append(keys, k),
		values:  append(values, v),
	}
}

// KVf rounds to cents.
func (log *kvlogger) KVf(k string, v float64) Logger {
	return log.KV(k, decimal.NewFromFloat(v).Round(2).String())
}

func (log *kvlogger) KVi(k string, v int) Logger { return log.KV(k, strconv.Itoa(v)) }

func (log kvlogger) Event(msg string) {
	log.encoder(
		append(log.keys, "event"),
		append(log.values, msg),
	)
}

type mutelogger uint8

func (l mutelogger) KV(_, _ string) Logger          { return l }
func (l mutelogger) KVf(_ string, _ float64) Logger { return l }
func (l mutelogger) KVi(_ string, _ int) Logger     { return l }
func (mutelogger) Event(_ string)                   {}
