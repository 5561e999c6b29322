package metrics

// HandlerMetrics is a collection of metrics used by submission handlers
type HandlerMetrics struct {
	SubmissionsReceived  Meter
	SubmissionsIgnored   Meter
	PropertiesDispatched Meter
	DispatchTimer        Timer
}

// ConfigureHandlerMetrics is handler metrics configurator
func ConfigureHandlerMetrics(registry Registry) *HandlerMetrics {
	return &HandlerMetrics{
		SubmissionsReceived:  registry.NewMeter("submissions", "received"),
		SubmissionsIgnored:   registry.NewMeter("submissions", "ignored"),
		PropertiesDispatched: registry.NewMeter("properties", "dispatched"),
		DispatchTimer:        registry.NewTimer("dispatch"),
	}
}

// SenderMetrics counts delivery outcomes of a single sender type
type SenderMetrics struct {
	SendsOK     Meter
	SendsFailed Meter
}

// ConfigureSenderMetrics registers metrics of sender type
func ConfigureSenderMetrics(registry Registry, senderType string) *SenderMetrics {
	ident := ReplaceNonAllowedMetricCharacters(senderType)
	return &SenderMetrics{
		SendsOK:     registry.NewMeter("senders", ident, "sends_ok"),
		SendsFailed: registry.NewMeter("senders", ident, "sends_failed"),
	}
}
