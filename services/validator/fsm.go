package validator

import (
	"github.com/looplab/fsm"
)

// Run states of the engine.
const (
	StateIdle          = "IDLE"
	StateCoinbaseCheck = "COINBASE_CHECK"
	StateReplay        = "REPLAY"
	StateCompacting    = "COMPACTING"
	StateDone          = "DONE"
	StateFailed        = "FAILED"
)

// Run events of the engine.
const (
	EventCheckCoinbase = "CHECK_COINBASE"
	EventReplay        = "REPLAY"
	EventCompact       = "COMPACT"
	EventFinish        = "FINISH"
	EventFail          = "FAIL"
)

// newRunStateMachine creates the lifecycle of a single validation run:
//
//	IDLE -> COINBASE_CHECK -> REPLAY -> COMPACTING -> DONE
//
// Any state before DONE can move to FAILED. DONE and FAILED are terminal.
func newRunStateMachine(callbacks fsm.Callbacks) *fsm.FSM {
	if callbacks == nil {
		callbacks = fsm.Callbacks{}
	}

	return fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{
				Name: EventCheckCoinbase,
				Src:  []string{StateIdle},
				Dst:  StateCoinbaseCheck,
			},
			{
				Name: EventReplay,
				Src:  []string{StateCoinbaseCheck},
				Dst:  StateReplay,
			},
			{
				Name: EventCompact,
				Src:  []string{StateReplay},
				Dst:  StateCompacting,
			},
			{
				Name: EventFinish,
				Src:  []string{StateCompacting},
				Dst:  StateDone,
			},
			{
				Name: EventFail,
				Src: []string{
					StateIdle,
					StateCoinbaseCheck,
					StateReplay,
					StateCompacting,
				},
				Dst: StateFailed,
			},
		},
		callbacks,
	)
}
