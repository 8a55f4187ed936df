// FILE: lixenwraith/natsort/doc.go

// Package natsort builds comparable keys that order strings "naturally":
// numbers embedded in text compare by numeric value instead of by character,
// so "item9" sorts before "item10".
//
// Features:
//   - Integer, float, and digit-only ("version") number recognition
//   - Optional sign and exponent handling for floats
//   - Nested inputs: sequences of strings produce nested keys
//   - A total order on keys, so mixed shapes never fail to compare
//   - Safe mode, which keeps numbers in different keys from lining up
//   - Pre-transforms applied to the top-level value (Lower, Fold)
//   - Sort helpers returning sorted copies or sorting indices
//
// Quick Start:
//
//	keyOf, err := natsort.KeyGen(natsort.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	k := keyOf(natsort.Text("num2"))
//	fmt.Println(k) // ("num", 2)
//
//	sorted, _ := natsort.Sorted([]string{"num3", "num5", "num2"}, natsort.DefaultOptions(), false)
//	fmt.Println(sorted) // [num2 num3 num5]
//
// Number kinds:
//
//	NumberFloat  "a-1.5e3" -> ("a", -1500)        signed and exponent apply
//	NumberInt    "a-15"    -> ("a", -15)          signed applies
//	NumberNone   "1.2.10"  -> ("", 1, ".", 2, ".", 10)
//
// NumberNone always matches unsigned digit runs, even when Signed is true.
//
// Key Ordering:
// Keys compare element by element and a strict prefix sorts first. At a shared
// position text sorts before a number, and a number before a nested key. Text
// compares by bytes, numbers by value.
//
// Thread Safety:
// A Generator holds no mutable state. Keys may be produced from any number of
// goroutines as long as the configured Transform is itself safe.
package natsort
