// ABOUTME: Log filtering and topic distribution
// ABOUTME: Filters are case-insensitive substring matches on topic and message

package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/resource"
)

// TopicSlices is how many topics the distribution shows before grouping into Other.
const TopicSlices = 8

// OtherTopic labels the bucket collecting the remaining topics.
const OtherTopic = "Other"

// LogFilter narrows log entries by topic and message text.
type LogFilter struct {
	Topic   string
	Message string
}

// Match reports whether the entry contains both filter strings, ignoring case.
func (f LogFilter) Match(e client.LogEntry) bool {
	return containsFold(e.Topics, f.Topic) && containsFold(e.Message, f.Message)
}

// Apply returns the matching entries in their original order.
func (f LogFilter) Apply(logs []client.LogEntry) []client.LogEntry {
	var out []client.LogEntry
	for _, e := range logs {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Active reports whether any filter text is set.
func (f LogFilter) Active() bool {
	return f.Topic != "" || f.Message != ""
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// TopicCount is one slice of the topic distribution.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// TopicDistribution counts entries per topic string, most frequent first
// with ties broken by name. When there are more than n topics the remainder
// is summed into a trailing Other slice.
func TopicDistribution(logs []client.LogEntry, n int) []TopicCount {
	counts := make(map[string]int)
	for _, e := range logs {
		counts[e.Topics]++
	}

	dist := make([]TopicCount, 0, len(counts))
	for topic, c := range counts {
		dist = append(dist, TopicCount{Topic: topic, Count: c})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Topic < dist[j].Topic
	})

	if len(dist) <= n {
		return dist
	}
	other := 0
	for _, tc := range dist[n:] {
		other += tc.Count
	}
	return append(dist[:n:n], TopicCount{Topic: OtherTopic, Count: other})
}

// UniqueTopics counts the distinct topic strings.
func UniqueTopics(logs []client.LogEntry) int {
	seen := make(map[string]struct{})
	for _, e := range logs {
		seen[e.Topics] = struct{}{}
	}
	return len(seen)
}

// LogsPanel renders the filtered log table.
func LogsPanel(r *resource.Resource[[]client.LogEntry], filter LogFilter) Panel {
	return build("logs", "Logs", r, "Logs not available", isEmptySlice[client.LogEntry], "No logs found",
		func(p *Panel, logs []client.LogEntry) {
			shown := filter.Apply(logs)
			if len(shown) == 0 {
				p.Empty = "No logs match your current filters"
				return
			}
			t := &Table{Columns: []string{"Time", "Topics", "Message"}}
			for _, e := range shown {
				t.Rows = append(t.Rows, []Cell{
					{Text: e.Time},
					{Text: e.Topics, Level: topicLevel(e.Topics)},
					{Text: e.Message},
				})
			}
			p.Table = t
			p.Footer = fmt.Sprintf("Showing %d of %d entries", len(shown), len(logs))
		})
}

// TopicsPanel renders the topic distribution of the unfiltered logs.
func TopicsPanel(r *resource.Resource[[]client.LogEntry]) Panel {
	return build("topics", "Log Topics", r, "Logs not available", isEmptySlice[client.LogEntry], "No logs found",
		func(p *Panel, logs []client.LogEntry) {
			dist := TopicDistribution(logs, TopicSlices)
			t := &Table{Columns: []string{"Topic", "Count", "Share"}}
			for _, tc := range dist {
				share := float64(tc.Count) / float64(len(logs)) * 100
				t.Rows = append(t.Rows, []Cell{
					{Text: tc.Topic, Level: topicLevel(tc.Topic)},
					{Text: fmt.Sprintf("%d", tc.Count)},
					{Text: FormatPercent(share)},
				})
			}
			p.Table = t
			p.Footer = fmt.Sprintf("Unique topics: %d", UniqueTopics(logs))
		})
}

func topicLevel(topics string) Level {
	t := strings.ToLower(topics)
	switch {
	case strings.Contains(t, "critical"), strings.Contains(t, "error"):
		return LevelCritical
	case strings.Contains(t, "warning"):
		return LevelWarning
	case strings.Contains(t, "info"):
		return LevelInfo
	default:
		return LevelNeutral
	}
}
