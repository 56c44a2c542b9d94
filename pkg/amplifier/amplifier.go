// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package amplifier

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/lassandro/intcode/pkg/machine"
)

var log = commonlog.GetLogger("intcode.amplifier")

var (
	ErrNoOutput = errors.New("Amplifier produced no output")
	ErrNoPhases = errors.New("No phase settings given")
	ErrStalled  = errors.New("Amplifier ring stalled")
)

type Mode uint8

const (
	MODE_SERIES Mode = iota
	MODE_FEEDBACK
)

func (m Mode) String() string {
	switch m {
	case MODE_SERIES:
		return "series"
	case MODE_FEEDBACK:
		return "feedback"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "s", "series":
		return MODE_SERIES, nil
	case "f", "feedback":
		return MODE_FEEDBACK, nil
	default:
		return 0, fmt.Errorf("Invalid amplifier mode '%s'", s)
	}
}

// Run dispatches to Series or Feedback.
func Run(proto *machine.Machine, phases []int64, mode Mode) (int64, error) {
	if mode == MODE_FEEDBACK {
		return Feedback(proto, phases)
	}

	return Series(proto, phases)
}

// Series runs one clone of proto per phase, each to completion, passing the
// first output of each amplifier to the next. The first signal is 0.
func Series(proto *machine.Machine, phases []int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrNoPhases
	}

	var signal int64

	for i, phase := range phases {
		mc := proto.Clone()
		mc.AddInput(phase, signal)

		if _, err := mc.Run(); err != nil {
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}

		output := mc.Output()

		if len(output) == 0 {
			return 0, fmt.Errorf("amplifier %d: %w", i, ErrNoOutput)
		}

		signal = output[0]
	}

	return signal, nil
}

// Feedback wires one clone of proto per phase into a ring. Each machine is
// resumed in turn with the latest output of the one before it, until every
// machine has halted. The result is the final output of the last machine.
func Feedback(proto *machine.Machine, phases []int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrNoPhases
	}

	ring := make([]*machine.Machine, len(phases))

	for i, phase := range phases {
		ring[i] = proto.Clone()
		ring[i].WaitOnInput()
		ring[i].AddInput(phase)
	}

	var signal int64
	running := len(ring)

	for running > 0 {
		progressed := false

		for i, mc := range ring {
			if mc.Halted() {
				continue
			}

			mc.AddInput(signal)
			before := len(mc.State.Output)

			status, err := mc.Run()

			if err != nil {
				return 0, fmt.Errorf("amplifier %d: %w", i, err)
			}

			if status == machine.STATUS_HALTED {
				running--
			}

			last, ok := mc.LastOutput()

			if !ok {
				return 0, fmt.Errorf("amplifier %d: %w", i, ErrNoOutput)
			}

			if len(mc.State.Output) > before || status == machine.STATUS_HALTED {
				progressed = true
			}

			signal = last
		}

		// No machine emitted or halted this round
		if !progressed {
			return 0, ErrStalled
		}
	}

	last, ok := ring[len(ring)-1].LastOutput()

	if !ok {
		return 0, ErrNoOutput
	}

	return last, nil
}

// MaxSignal tries every ordering of phases and returns the strongest signal
// along with the ordering that produced it.
func MaxSignal(proto *machine.Machine, phases []int64, mode Mode) (int64, []int64, error) {
	if len(phases) == 0 {
		return 0, nil, ErrNoPhases
	}

	var best int64
	var bestPhases []int64

	perms := NewPermutations(phases)

	for perms.Next() {
		signal, err := Run(proto, perms.Value(), mode)

		if err != nil {
			return 0, nil, fmt.Errorf("phases %v: %w", perms.Value(), err)
		}

		if bestPhases == nil || signal > best {
			best = signal
			bestPhases = append(bestPhases[:0], perms.Value()...)
		}
	}

	log.Debugf("%s max signal %d from phases %v", mode, best, bestPhases)

	return best, bestPhases, nil
}
