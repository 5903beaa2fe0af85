package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string        `json:"uptime"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	StartTime     time.Time     `json:"start_time"`
	GoRoutines    int           `json:"goroutines"`
	MemoryAllocMB float64       `json:"memory_alloc_mb"`
	NumCPU        int           `json:"num_cpu"`
	Process       *ProcessStats `json:"process,omitempty"`
	Journal       *JournalStats `json:"journal,omitempty"`
}

// ProcessStats describes this process as seen by the operating system.
type ProcessStats struct {
	RSSMB      float64 `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
}

// JournalStats summarises the check journal.
type JournalStats struct {
	Total    int            `json:"total"`
	Accepted int            `json:"accepted"`
	Rejected int            `json:"rejected"`
	ByType   map[string]int `json:"by_type"`
	ByKind   map[string]int `json:"by_kind"`
}
