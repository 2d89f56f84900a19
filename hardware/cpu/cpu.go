// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
)

// Display is the part of the framebuffer used by the CPU.
type Display interface {
	Clear()
	DrawSprite(x, y int, sprite []uint8) bool
}

// Keypad is the part of the keypad used by the CPU.
type Keypad interface {
	IsPressed(key int) (bool, error)
	TakePress() (int, bool)
	ClearPress()
}

// State of the CPU.
type State int

// List of valid State values.
const (
	Running State = iota
	AwaitingKey
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case AwaitingKey:
		return "AwaitingKey"
	}
	return "unknown state"
}

// instruction width in bytes. the program counter always advances by this
// amount after an instruction
const width = 2

// LastResult records the most recently executed instruction.
type LastResult struct {
	Address uint16
	Opcode  instructions.Opcode
	Defn    *instructions.Definition
}

func (r LastResult) String() string {
	if r.Defn == nil {
		return ""
	}
	return fmt.Sprintf("%03x %s %s", r.Address, r.Opcode, r.Defn.Disassemble(r.Opcode))
}

// CPU implements the CHIP-8 CPU.
type CPU struct {
	instance *instance.Instance

	PC    registers.ProgramCounter
	I     registers.Index
	V     *registers.Data
	Stack registers.Stack

	mem     cpubus.Memory
	display Display
	timers  *timers.Timers
	keypad  Keypad

	state State

	// register that will receive the next key press when in the AwaitingKey
	// state
	awaitReg int

	// the number of instructions executed since the last reset
	InstructionCount int

	LastResult LastResult
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(ins *instance.Instance, mem cpubus.Memory, display Display, tmrs *timers.Timers, kp Keypad) *CPU {
	mc := &CPU{
		instance: ins,
		V:        registers.NewData(),
		mem:      mem,
		display:  display,
		timers:   tmrs,
		keypad:   kp,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s", mc.PC, mc.I, mc.V, &mc.Stack)
}

// Reset CPU to its initial state. Data registers are randomised if the
// RandomState preference is set.
func (mc *CPU) Reset() {
	mc.PC.Load(memory.ProgramOrigin)
	mc.I.Load(0)
	mc.V.Reset()
	mc.Stack.Reset()
	mc.state = Running
	mc.awaitReg = 0
	mc.InstructionCount = 0
	mc.LastResult = LastResult{}

	if mc.instance.Prefs.RandomState.Get().(bool) {
		for i := 0; i < registers.NumData; i++ {
			r, _ := mc.V.Get(i)
			r.Load(mc.instance.Random.Byte())
		}
	}
}

// State returns the current state of the CPU.
func (mc *CPU) State() State {
	return mc.state
}

// read a byte from memory. errors are returned with the cpu prefix.
func (mc *CPU) read(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, curated.Errorf("cpu: %v", err)
	}
	return v, nil
}

// write a byte to memory. errors are returned with the cpu prefix.
func (mc *CPU) write(address uint16, data uint8) error {
	if err := mc.mem.Write(address, data); err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	return nil
}

func (mc *CPU) reg(n int) (*registers.Register, error) {
	r, err := mc.V.Get(n)
	if err != nil {
		return nil, curated.Errorf("cpu: %v", err)
	}
	return r, nil
}

func (mc *CPU) setFlag(v bool) {
	if v {
		mc.V.VF().Load(1)
	} else {
		mc.V.VF().Load(0)
	}
}

// checkKey is called in place of fetching an instruction when the CPU is in
// the AwaitingKey state.
func (mc *CPU) checkKey() error {
	k, ok := mc.keypad.TakePress()
	if !ok {
		return nil
	}
	vx, err := mc.reg(mc.awaitReg)
	if err != nil {
		return err
	}
	vx.Load(uint8(k))
	mc.state = Running
	return nil
}

// ExecuteInstruction steps CPU forward one instruction.
func (mc *CPU) ExecuteInstruction() error {
	if mc.state == AwaitingKey {
		return mc.checkKey()
	}

	address := mc.PC.Value()

	hi, err := mc.read(address)
	if err != nil {
		return err
	}
	lo, err := mc.read(address + 1)
	if err != nil {
		return err
	}

	opcode := instructions.Opcode(uint16(hi)<<8 | uint16(lo))
	defn := instructions.Decode(opcode)

	mc.LastResult = LastResult{
		Address: address,
		Opcode:  opcode,
		Defn:    defn,
	}
	mc.InstructionCount++

	if err := mc.execute(address, opcode, defn); err != nil {
		return err
	}

	mc.PC.Add(width)

	return nil
}

func (mc *CPU) execute(address uint16, opcode instructions.Opcode, defn *instructions.Definition) error {
	// every instruction that uses Vx or Vy has them in the same position. we
	// can't know which instructions use them without consulting the
	// definition so we just get them for all instructions. opcode.X() and
	// opcode.Y() never return an index outside of the register bank
	vx, err := mc.reg(opcode.X())
	if err != nil {
		return err
	}
	vy, err := mc.reg(opcode.Y())
	if err != nil {
		return err
	}

	switch defn.Operator {
	case instructions.Unknown:
		logger.Logf(mc.instance, "cpu", "unknown opcode (%s) at %03x", opcode, address)

	case instructions.Cls:
		mc.display.Clear()

	case instructions.Ret:
		a, ok := mc.Stack.Pop()
		if !ok {
			logger.Logf(mc.instance, "cpu", "return with empty stack at %03x", address)
			break // switch
		}
		mc.PC.Load(a)

	case instructions.Sys:
		logger.Logf(mc.instance, "cpu", "ignoring SYS %03x at %03x", opcode.NNN(), address)

	case instructions.Jp:
		mc.PC.Load(opcode.NNN())
		mc.PC.Subtract(width)

	case instructions.Call:
		if !mc.Stack.Push(address) {
			logger.Logf(mc.instance, "cpu", "stack full. return address for call at %03x dropped", address)
		}
		mc.PC.Load(opcode.NNN())
		mc.PC.Subtract(width)

	case instructions.SeByte:
		if vx.Value() == opcode.KK() {
			mc.PC.Add(width)
		}

	case instructions.SneByte:
		if vx.Value() != opcode.KK() {
			mc.PC.Add(width)
		}

	case instructions.SeReg:
		if vx.Value() == vy.Value() {
			mc.PC.Add(width)
		}

	case instructions.SneReg:
		if vx.Value() != vy.Value() {
			mc.PC.Add(width)
		}

	case instructions.LdByte:
		vx.Load(opcode.KK())

	case instructions.AddByte:
		// no flag for this form of addition
		_ = vx.Add(opcode.KK())

	case instructions.LdReg:
		vx.Load(vy.Value())

	case instructions.Or:
		vx.OR(vy.Value())

	case instructions.And:
		vx.AND(vy.Value())

	case instructions.Xor:
		vx.XOR(vy.Value())

	// for the following instructions, the operation is performed on a copy
	// of Vx so that the flag can be written before the result
	case instructions.AddReg:
		r := *vx
		mc.setFlag(r.Add(vy.Value()))
		vx.Load(r.Value())

	case instructions.Sub:
		r := *vx
		mc.setFlag(r.Subtract(vy.Value()))
		vx.Load(r.Value())

	case instructions.Subn:
		r := *vx
		mc.setFlag(r.SubtractFrom(vy.Value()))
		vx.Load(r.Value())

	case instructions.Shr:
		r := *vx
		mc.setFlag(r.ShiftRight())
		vx.Load(r.Value())

	case instructions.Shl:
		r := *vx
		mc.setFlag(r.ShiftLeft())
		vx.Load(r.Value())

	case instructions.LdI:
		mc.I.Load(opcode.NNN())

	case instructions.JpV0:
		v0, err := mc.reg(0)
		if err != nil {
			return err
		}
		mc.PC.Load(opcode.NNN() + uint16(v0.Value()))
		mc.PC.Subtract(width)

	case instructions.Rnd:
		switch mc.instance.Prefs.RandomMode.String() {
		case preferences.RandomModulus:
			vx.Load(uint8(mc.instance.Random.Intn(int(opcode.KK()) + 1)))
		default:
			vx.Load(mc.instance.Random.Byte() & opcode.KK())
		}

	case instructions.Drw:
		n := int(opcode.N())
		sprite := make([]uint8, n)
		for i := 0; i < n; i++ {
			sprite[i], err = mc.read(mc.I.Value() + uint16(i))
			if err != nil {
				return err
			}
		}
		mc.setFlag(mc.display.DrawSprite(int(vx.Value()), int(vy.Value()), sprite))

	// Vx is an index into the keypad and is not masked. a key outside of the
	// keypad is an error
	case instructions.Skp:
		pressed, err := mc.keypad.IsPressed(int(vx.Value()))
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		if pressed {
			mc.PC.Add(width)
		}

	case instructions.Sknp:
		pressed, err := mc.keypad.IsPressed(int(vx.Value()))
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		if !pressed {
			mc.PC.Add(width)
		}

	case instructions.LdFromDT:
		vx.Load(mc.timers.Delay.Value())

	case instructions.LdKey:
		// only presses that happen after this instruction count
		mc.keypad.ClearPress()
		mc.awaitReg = opcode.X()
		mc.state = AwaitingKey

	case instructions.LdToDT:
		mc.timers.Delay.Load(vx.Value())

	case instructions.LdToST:
		mc.timers.Sound.Load(vx.Value())

	case instructions.AddI:
		mc.setFlag(mc.I.Add(vx.Value()))

	// Vx is a digit. the upper nibble is ignored
	case instructions.LdFont:
		mc.I.Load(memory.GlyphAddress(vx.Value()))

	case instructions.LdBCD:
		v := vx.Value()
		for i, d := range [3]uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.write(mc.I.Value()+uint16(i), d); err != nil {
				return err
			}
		}

	case instructions.LdDump:
		for i := 0; i <= opcode.X(); i++ {
			r, err := mc.reg(i)
			if err != nil {
				return err
			}
			if err := mc.write(mc.I.Value()+uint16(i), r.Value()); err != nil {
				return err
			}
		}

	case instructions.LdLoad:
		for i := 0; i <= opcode.X(); i++ {
			r, err := mc.reg(i)
			if err != nil {
				return err
			}
			v, err := mc.read(mc.I.Value() + uint16(i))
			if err != nil {
				return err
			}
			r.Load(v)
		}

	default:
		return curated.Errorf("cpu: unimplemented operator (%v)", defn.Operator)
	}

	return nil
}
