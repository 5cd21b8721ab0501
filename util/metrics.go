package util

// MetricsBucketsMilliLongSeconds defines histogram buckets for longer millisecond-level measurements.
// Buckets range from 64ms to 131s in exponential progression.
var MetricsBucketsMilliLongSeconds = []float64{
	64e-3, 128e-3, 256e-3, 512e-3, 1024e-3, 2048e-3, 4096e-3, 8192e-3, 16384e-3, 32768e-3, 65536e-3, 131072e-3,
}

// MetricsBucketsSeconds defines histogram buckets for second-level duration measurements.
// Buckets range from 1s to 2048s (~34 minutes) in exponential progression.
var MetricsBucketsSeconds = []float64{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048,
}
