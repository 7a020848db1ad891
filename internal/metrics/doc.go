// Package metrics records settings generation metrics.
//
// Components receive a Recorder. NoopRecorder is the default; PrometheusRecorder
// collects into a registry that the CLI writes to a node-exporter textfile when
// metrics.textfile_path is configured.
package metrics
