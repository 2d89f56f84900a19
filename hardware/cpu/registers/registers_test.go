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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectEquality(t, r.String(), "test=00")

	r.Load(250)
	test.ExpectSuccess(t, r.Add(10))
	test.ExpectEquality(t, r.Value(), uint8(4))

	r.Load(10)
	test.ExpectFailure(t, r.Add(10))
	test.ExpectEquality(t, r.Value(), uint8(20))

	// subtraction flag is the inverse of borrow
	r.Load(5)
	test.ExpectFailure(t, r.Subtract(10))
	test.ExpectEquality(t, r.Value(), uint8(251))
	r.Load(10)
	test.ExpectSuccess(t, r.Subtract(10))
	test.ExpectEquality(t, r.Value(), uint8(0))

	r.Load(5)
	test.ExpectSuccess(t, r.SubtractFrom(10))
	test.ExpectEquality(t, r.Value(), uint8(5))
	r.Load(10)
	test.ExpectFailure(t, r.SubtractFrom(5))
	test.ExpectEquality(t, r.Value(), uint8(251))
}

func TestShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "test")
	test.ExpectSuccess(t, r.ShiftRight())
	test.ExpectEquality(t, r.Value(), uint8(0x40))
	test.ExpectFailure(t, r.ShiftRight())
	test.ExpectEquality(t, r.Value(), uint8(0x20))

	r.Load(0x81)
	test.ExpectSuccess(t, r.ShiftLeft())
	test.ExpectEquality(t, r.Value(), uint8(0x02))
	test.ExpectFailure(t, r.ShiftLeft())
	test.ExpectEquality(t, r.Value(), uint8(0x04))
}

func TestLogic(t *testing.T) {
	r := registers.NewRegister(0xf0, "test")
	r.OR(0x0f)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	r.AND(0x3c)
	test.ExpectEquality(t, r.Value(), uint8(0x3c))
	r.XOR(0xff)
	test.ExpectEquality(t, r.Value(), uint8(0xc3))
}

func TestData(t *testing.T) {
	d := registers.NewData()

	r, err := d.Get(0x0a)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Label(), "VA")
	r.Load(0x12)

	r, err = d.Get(0x0a)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Value(), uint8(0x12))

	test.ExpectEquality(t, d.VF().Label(), "VF")

	_, err = d.Get(16)
	test.ExpectSuccess(t, curated.Is(err, registers.NoSuchRegister))
	_, err = d.Get(-1)
	test.ExpectSuccess(t, curated.Is(err, registers.NoSuchRegister))

	d.Reset()
	test.ExpectSuccess(t, r.IsZero())
}

func TestIndex(t *testing.T) {
	var i registers.Index
	i.Load(0x0ffe)
	test.ExpectFailure(t, i.Add(1))
	test.ExpectEquality(t, i.Value(), uint16(0x0fff))
	test.ExpectSuccess(t, i.Add(1))
	test.ExpectEquality(t, i.Value(), uint16(0x1000))
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x200)
	pc.Add(2)
	test.ExpectEquality(t, pc.Value(), uint16(0x202))
	pc.Subtract(4)
	test.ExpectEquality(t, pc.Value(), uint16(0x1fe))
	pc.Load(0x300)
	test.ExpectEquality(t, pc.String(), "PC=300")
}

func TestStack(t *testing.T) {
	var s registers.Stack

	_, ok := s.Pop()
	test.ExpectFailure(t, ok)

	for i := 0; i < registers.StackCapacity; i++ {
		test.ExpectSuccess(t, s.Push(uint16(0x200+i*2)))
	}
	test.ExpectEquality(t, s.Depth(), registers.StackCapacity)

	// push onto a full stack is dropped
	test.ExpectFailure(t, s.Push(0x400))
	test.ExpectEquality(t, s.Depth(), registers.StackCapacity)

	v, ok := s.Pop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0x200+(registers.StackCapacity-1)*2))

	s.Reset()
	test.ExpectEquality(t, s.Depth(), 0)
	test.ExpectEquality(t, s.String(), "SP=0 []")
}
