package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"iface-caster/diagnostic"
	"iface-caster/registry"
)

// DefaultNamespace is used when NewCollector is given an empty namespace.
const DefaultNamespace = "iface_caster"

// Collector reports registry gauges. It is safe for concurrent scrapes
// since a frozen registry is read-only.
type Collector struct {
	reg *registry.Registry

	interfaces      *prometheus.Desc
	implementations *prometheus.Desc
	diagnostics     *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for reg.
func NewCollector(reg *registry.Registry, namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &Collector{
		reg: reg,
		interfaces: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "interfaces"),
			"Number of interfaces declared castable.",
			nil, nil,
		),
		implementations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "implementations"),
			"Number of concrete types registered per interface.",
			[]string{"interface"}, nil,
		),
		diagnostics: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "diagnostics"),
			"Diagnostics reported while the registry was built.",
			[]string{"severity"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.interfaces
	ch <- c.implementations
	ch <- c.diagnostics
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ifaces := c.reg.Interfaces()
	ch <- prometheus.MustNewConstMetric(c.interfaces, prometheus.GaugeValue, float64(len(ifaces)))

	for _, iface := range ifaces {
		impls, _ := c.reg.Implementers(iface)
		ch <- prometheus.MustNewConstMetric(c.implementations, prometheus.GaugeValue, float64(len(impls)), iface.FullName())
	}

	diags := c.reg.Diagnostics()
	for _, sev := range []diagnostic.Severity{diagnostic.SeverityInfo, diagnostic.SeverityWarning, diagnostic.SeverityError} {
		ch <- prometheus.MustNewConstMetric(c.diagnostics, prometheus.GaugeValue, float64(diags.Count(sev)), sev.String())
	}
}
