package code

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		op       Opcode
		operands []int
		expected []byte
	}{
		{OpConstant, []int{65534}, []byte{byte(OpConstant), 255, 254}},
		{OpAdd, []int{}, []byte{byte(OpAdd)}},
		{OpModulo, []int{}, []byte{byte(OpModulo)}},
		{OpGetLocal, []int{255}, []byte{byte(OpGetLocal), 255}},
		{OpCall, []int{3}, []byte{byte(OpCall), 3}},
		{OpTailCall, []int{2}, []byte{byte(OpTailCall), 2}},
		{OpClosure, []int{65534, 255}, []byte{byte(OpClosure), 255, 254, 255}},
	}

	for _, tt := range tests {
		instruction := Make(tt.op, tt.operands...)

		if len(instruction) != len(tt.expected) {
			t.Errorf("instruction has wrong length. want=%d, got=%d",
				len(tt.expected), len(instruction))
		}

		for i, b := range tt.expected {
			if instruction[i] != tt.expected[i] {
				t.Errorf("wrong byte at pos %d. want=%d, got=%d", i, b, instruction[i])
			}
		}
	}
}

func TestInstructionsString(t *testing.T) {
	instructions := []Instructions{
		Make(OpAdd),
		Make(OpGetLocal, 1),
		Make(OpConstant, 2),
		Make(OpConstant, 65535),
		Make(OpClosure, 65535, 255),
		Make(OpTailCall, 1),
	}

	expected := `0000 OpAdd
0001 OpGetLocal 1
0003 OpConstant 2
0006 OpConstant 65535
0009 OpClosure 65535 255
0013 OpTailCall 1
`

	concatted := Instructions{}
	for _, ins := range instructions {
		concatted = append(concatted, ins...)
	}

	if concatted.String() != expected {
		t.Errorf("instructions wrongly formatted.\nwant=%q\ngot=%q",
			expected, concatted.String())
	}
}

func TestReadOperands(t *testing.T) {
	tests := []struct {
		op        Opcode
		operands  []int
		bytesRead int
	}{
		{OpConstant, []int{65535}, 2},
		{OpGetLocal, []int{255}, 1},
		{OpClosure, []int{65535, 255}, 3},
	}

	for _, tt := range tests {
		instruction := Make(tt.op, tt.operands...)

		def, err := Lookup(byte(tt.op))
		if err != nil {
			t.Fatalf("definition not found: %q\n", err)
		}

		operandsRead, n := ReadOperands(def, instruction[1:])
		if n != tt.bytesRead {
			t.Fatalf("n wrong. want=%d, got=%d", tt.bytesRead, n)
		}

		for i, want := range tt.operands {
			if operandsRead[i] != want {
				t.Errorf("operand wrong. want=%d, got=%d", want, operandsRead[i])
			}
		}
	}
}

// TestRoundTrip re-assembles a disassembled stream instruction by instruction and
// verifies the original byte sequence comes back.
func TestRoundTrip(t *testing.T) {
	original := Instructions{}
	for _, ins := range []Instructions{
		Make(OpConstant, 1),
		Make(OpConstant, 2),
		Make(OpGreaterThan),
		Make(OpJumpNotTruthy, 14),
		Make(OpTrue),
		Make(OpJump, 15),
		Make(OpNull),
		Make(OpPop),
	} {
		original = append(original, ins...)
	}

	reassembled := Instructions{}
	i := 0
	for i < len(original) {
		def, err := Lookup(original[i])
		if err != nil {
			t.Fatalf("lookup failed at offset %d: %s", i, err)
		}
		operands, read := ReadOperands(def, original[i+1:])
		reassembled = append(reassembled, Make(Opcode(original[i]), operands...)...)
		i += read + 1
	}

	if len(reassembled) != len(original) {
		t.Fatalf("length mismatch. want=%d, got=%d", len(original), len(reassembled))
	}
	for i := range original {
		if reassembled[i] != original[i] {
			t.Fatalf("byte mismatch at %d. want=%d, got=%d", i, original[i], reassembled[i])
		}
	}
}
