package eventproto

import (
	"fmt"
	"time"

	"eventlink/pkg/eventdef"
	"eventlink/pkg/mavwire"
)

// ProcessMessage is the sole mutator of sequence state for this remote. It
// must execute non-reentrantly -- callers may invoke it from multiple
// listener goroutines carrying datagrams for the same remote, but the
// internal mutex serializes them. Callbacks run synchronously inside this
// call and must only enqueue work, never call back into this Protocol.
func (p *Protocol) ProcessMessage(env mavwire.Envelope, payload []byte) error {
	switch env.MsgID {
	case mavwire.MsgIDEvent:
		ev, err := mavwire.DecodeEvent(payload)
		if err != nil {
			return err
		}
		p.handleEvent(env.ComponentID, ev)
		return nil
	case mavwire.MsgIDCurrentEventSequence:
		cs, err := mavwire.DecodeCurrentEventSequence(payload)
		if err != nil {
			return err
		}
		p.handleCurrentEventSequence(cs)
		return nil
	case mavwire.MsgIDEventError:
		ee, err := mavwire.DecodeEventError(payload)
		if err != nil {
			return err
		}
		p.handleEventError(ee)
		return nil
	default:
		return fmt.Errorf("eventproto: unrecognized message id %d", env.MsgID)
	}
}

func (p *Protocol) handleEvent(envelopeComponentID uint8, ev mavwire.Event) {
	p.mu.Lock()

	if envelopeComponentID != p.remote.ComponentID {
		p.mu.Unlock()
		return
	}

	p.checkTimestampResetLocked(ev.TimeBootMs)

	if !p.state.HasSequence {
		p.state.HasSequence = true
		p.state.LatestSequence = ev.Sequence - 1
	}

	expected := p.state.LatestSequence + 1
	switch compareSequence(expected, ev.Sequence) {
	case sequenceOlder:
		p.mu.Unlock()
		return
	case sequenceNewer:
		gapSeq := p.state.LatestSequence + 1
		p.mu.Unlock()
		p.requestEvent(gapSeq)
		return
	}

	p.state.LatestSequence = ev.Sequence
	p.state.LastTimestampMs = ev.TimeBootMs

	if p.state.HasCurrentSequence {
		if compareSequence(p.state.LatestSequence, p.state.LatestCurrentSequence) == sequenceNewer {
			behindSeq := p.state.LatestSequence + 1
			p.mu.Unlock()
			p.requestEvent(behindSeq)
			p.mu.Lock()
		}
	}

	p.stopPendingTimerIfSatisfiedLocked(ev.Sequence)
	p.mu.Unlock()

	if ev.DestinationComponent != p.station.ComponentID && ev.DestinationComponent != mavwire.BroadcastComponent {
		return
	}

	p.deliver(ev)
}

// checkTimestampResetLocked implements the reboot-detection rule. Callers
// must hold p.mu.
func (p *Protocol) checkTimestampResetLocked(incoming uint32) {
	if p.state.LastTimestampMs == 0 {
		p.state.LastTimestampMs = incoming
		return
	}
	if incoming+rebootGapMs < p.state.LastTimestampMs && p.state.LastTimestampMs < ^uint32(0)-rebootGuardMs {
		p.state.HasSequence = false
		p.state.HasCurrentSequence = false
		if p.cb.RebootDetected != nil {
			p.cb.RebootDetected()
		}
	}
}

// deliver looks up msg.id in the current store generation and hands the
// result to the appropriate callback. It is called without p.mu held.
func (p *Protocol) deliver(ev mavwire.Event) {
	store := p.store.Load()
	def, ok := store.FindEvent(ev.Id)
	if !ok {
		if p.cb.HandleUnknownEvent != nil {
			p.cb.HandleUnknownEvent(ev.Id)
		}
		return
	}

	wire := eventdef.EventWire{
		Id:                   ev.Id,
		Sequence:             ev.Sequence,
		TimeBootMs:           ev.TimeBootMs,
		DestinationComponent: ev.DestinationComponent,
		Arguments:            ev.Arguments,
	}
	parsed := eventdef.NewParsedEvent(wire, def, store, p.cfg)
	if p.cb.HandleEvent != nil {
		p.cb.HandleEvent(parsed)
	}
}

func (p *Protocol) handleCurrentEventSequence(cs mavwire.CurrentEventSequence) {
	p.mu.Lock()

	if cs.Reset() {
		p.state.HasSequence = false
	}
	if !p.state.HasSequence {
		p.state.HasSequence = true
		p.state.LatestSequence = cs.Sequence
	}

	needsRequest := compareSequence(p.state.LatestSequence, cs.Sequence) == sequenceNewer
	requestSeq := p.state.LatestSequence + 1

	p.state.HasCurrentSequence = true
	p.state.LatestCurrentSequence = cs.Sequence
	p.mu.Unlock()

	if needsRequest {
		p.requestEvent(requestSeq)
	}
}

func (p *Protocol) handleEventError(ee mavwire.EventError) {
	if ee.TargetSystem != p.station.SystemID || ee.TargetComponent != p.station.ComponentID {
		return
	}

	p.mu.Lock()
	expected := p.state.LatestSequence + 1
	if ee.Sequence != expected {
		p.mu.Unlock()
		return
	}

	numLost := int(ee.SequenceOldestAvailable - p.state.LatestSequence - 1)
	p.state.LatestSequence = ee.SequenceOldestAvailable - 1
	nextSeq := p.state.LatestSequence + 1
	p.stopPendingTimerLocked()
	p.mu.Unlock()

	if p.cb.Error != nil {
		p.cb.Error(numLost)
	}
	p.requestEvent(nextSeq)
}

// requestEvent sends a request-event for seq and arms the retransmit timer.
// Safe to call without p.mu held; it takes the lock itself.
func (p *Protocol) requestEvent(seq uint16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requestEventLocked(seq)
}

func (p *Protocol) requestEventLocked(seq uint16) {
	p.pendingSeq = &seq
	if p.cb.SendRequestEvent != nil {
		p.cb.SendRequestEvent(seq)
	}
	p.stopPendingTimerLocked()
	p.pendingTimer = time.AfterFunc(retransmitInterval, func() {
		p.OnTimeout(seq)
	})
}

// OnTimeout is the retransmit hook: idempotent, re-fires the same pending
// request if it is still outstanding. It is a second entry point subject to
// the same non-reentrancy requirement as ProcessMessage.
func (p *Protocol) OnTimeout(seq uint16) {
	p.mu.Lock()
	if p.pendingSeq == nil || *p.pendingSeq != seq {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	if p.cb.SendRequestEvent != nil {
		p.cb.SendRequestEvent(seq)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pendingSeq == nil || *p.pendingSeq != seq {
		return
	}
	p.pendingTimer = time.AfterFunc(retransmitInterval, func() {
		p.OnTimeout(seq)
	})
}

// stopPendingTimerIfSatisfiedLocked clears the pending retransmit once the
// sequence it was waiting for has arrived via a normal event delivery.
// Callers must hold p.mu.
func (p *Protocol) stopPendingTimerIfSatisfiedLocked(delivered uint16) {
	if p.pendingSeq != nil && *p.pendingSeq == delivered {
		p.stopPendingTimerLocked()
	}
}

func (p *Protocol) stopPendingTimerLocked() {
	if p.pendingTimer != nil {
		p.pendingTimer.Stop()
		p.pendingTimer = nil
	}
	p.pendingSeq = nil
}
