package cache

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "oaslint"

// Collector exports the counters of a Set as Prometheus metrics labelled by
// cache name. Values are read from the set at scrape time.
type Collector struct {
	set *Set

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	entries   *prometheus.Desc
	capacity  *prometheus.Desc
}

// NewCollector creates a collector for set. Register it on a registry owned by
// the caller.
func NewCollector(set *Set) *Collector {
	labels := []string{"cache"}
	return &Collector{
		set: set,
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "cache", "hits_total"),
			"Total number of cache hits", labels, nil),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "cache", "misses_total"),
			"Total number of cache misses", labels, nil),
		evictions: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "cache", "evictions_total"),
			"Total number of entries evicted for capacity", labels, nil),
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "cache", "entries"),
			"Current number of cache entries", labels, nil),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "cache", "capacity"),
			"Configured cache capacity, 0 when disabled", labels, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.entries
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, s := range c.set.Stats() {
		ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits), name)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions), name)
		ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Entries), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity), name)
	}
}
