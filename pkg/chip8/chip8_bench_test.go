package chip8

import "testing"

// BenchmarkStep_Jump measures raw fetch/dispatch overhead with a jump that
// loops on itself.
func BenchmarkStep_Jump(b *testing.B) {
	c := New(false)
	loadOpcodes(c, 0x1200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Step(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStep_Draw measures sprite blitting throughput with a full-height
// sprite drawn over itself.
func BenchmarkStep_Draw(b *testing.B) {
	c := New(false)
	c.I = 0x300
	for i := 0; i < 15; i++ {
		c.Memory[0x300+i] = 0xAA
	}
	loadOpcodes(c, 0xD01F, 0x1200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
