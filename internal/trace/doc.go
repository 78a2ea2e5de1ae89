// Package trace reads and writes the §6 trace file format used to record
// and replay a raw device event stream: a fixed header magic, a sequence
// of axis-range records terminated by two empty records, then a sequence
// of timestamped event records. It also bridges a captured network trace
// (PCAP) of wire bundles back into decoded messages.
package trace
