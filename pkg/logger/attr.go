package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Network groups a network's identity under the key "network".
func Network(id int64, acronym string) slog.Attr {
	return Group("network",
		slog.Int64("id", id),
		slog.String("acronym", acronym),
	)
}

// Snapshot records a snapshot identifier under the key "snapshot_id".
func Snapshot(id int64) slog.Attr {
	return slog.Int64("snapshot_id", id)
}

// Record records a record identifier under the key "record_id".
func Record(id int64) slog.Attr {
	return slog.Int64("record_id", id)
}

// Rule records a rule identifier under the key "rule_id".
func Rule(id int64) slog.Attr {
	return slog.Int64("rule_id", id)
}

// WorkerID records the worker instance identifier under the key "worker_id".
// If id is nil, it returns an empty Attr.
func WorkerID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("worker_id", id)
}

// Lane records a scheduling lane name under the key "lane".
func Lane(name string) slog.Attr {
	return slog.String("lane", name)
}

// Page records a 1-based page number under the key "page".
func Page(n int) slog.Attr {
	return slog.Int("page", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
