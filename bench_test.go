package natsort

import (
	"fmt"
	"testing"
)

func BenchmarkStringKey(b *testing.B) {
	inputs := map[string]string{
		"short":   "file12.txt",
		"version": "release-2.14.103-rc4",
		"long":    "a1b22c333d4444e55555f666666g7777777h88888888",
	}

	for name, s := range inputs {
		b.Run(name, func(b *testing.B) {
			g := MustNewGenerator(DefaultOptions())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.StringKey(s)
			}
		})
	}
}

func BenchmarkSorted(b *testing.B) {
	items := make([]string, 1000)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d.%d", (i*7919)%1000, i%13)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sorted(items, DefaultOptions(), false); err != nil {
			b.Fatal(err)
		}
	}
}
