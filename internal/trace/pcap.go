//go:build pcap
// +build pcap

package trace

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"github.com/banshee-data/tuio2d/internal/messages"
	"github.com/banshee-data/tuio2d/internal/wire"
)

// ReplayPCAPFile reads UDP bundle payloads from a PCAP capture of wire
// traffic, decodes each one against registry, and calls handle with the
// resulting messages in capture order. Only available when building with
// the 'pcap' build tag (this package links libpcap).
func ReplayPCAPFile(ctx context.Context, pcapFile string, udpPort int, registry *wire.Registry, handle func([]messages.Message)) error {
	handleFile, err := pcap.OpenOffline(pcapFile)
	if err != nil {
		return fmt.Errorf("trace: open PCAP file %s: %w", pcapFile, err)
	}
	defer handleFile.Close()

	filterStr := fmt.Sprintf("udp port %d", udpPort)
	if err := handleFile.SetBPFFilter(filterStr); err != nil {
		return fmt.Errorf("trace: set BPF filter %q: %w", filterStr, err)
	}
	log.Printf("trace: PCAP BPF filter set: %s", filterStr)

	packetSource := gopacket.NewPacketSource(handleFile, handleFile.LinkType())
	packetCount := 0
	startTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			log.Printf("trace: PCAP replay stopping due to context cancellation (processed %d packets)", packetCount)
			return ctx.Err()
		case packet := <-packetSource.Packets():
			if packet == nil {
				log.Printf("trace: PCAP replay complete: %d packets in %v", packetCount, time.Since(startTime))
				return nil
			}
			packetCount++

			udpLayer := packet.Layer(layers.LayerTypeUDP)
			if udpLayer == nil {
				continue
			}
			udp, ok := udpLayer.(*layers.UDP)
			if !ok || len(udp.Payload) == 0 {
				continue
			}

			b, err := wire.DecodeBundle(udp.Payload)
			if err != nil {
				log.Printf("trace: discarding unparsable bundle in packet %d: %v", packetCount, err)
				continue
			}
			msgs, err := registry.DecodeBundle(b)
			if err != nil {
				log.Printf("trace: discarding bundle in packet %d: %v", packetCount, err)
				continue
			}
			handle(msgs)
		}
	}
}
