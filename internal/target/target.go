// Copyright 2026 The solc-core Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package target holds the per-compile, read-only parameter block that
// spec.md §3 calls the Namespace's "target parameters": address byte
// length, value (balance) byte length, pointer byte size, selector byte
// length, and which storage model (slot-based or account-buffer) the
// back-end expects (spec.md §4.5, §4.6).
package target

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StorageModel distinguishes the two storage lowering strategies named in
// spec.md §4.5.
type StorageModel int

const (
	// Slots is the keccak-derived, 32-byte-slot storage model used by the
	// WebAssembly-hosted and EVM-compatible back-ends.
	Slots StorageModel = iota
	// AccountBuffer is the flat, sparse-hash-bucketed account-data layout
	// used by the BPF-hosted back-end.
	AccountBuffer
)

func (m StorageModel) String() string {
	switch m {
	case Slots:
		return "slots"
	case AccountBuffer:
		return "account-buffer"
	default:
		return fmt.Sprintf("StorageModel(%d)", int(m))
	}
}

// Target is the read-only parameter block threaded through resolution,
// storage layout, and ABI lowering. A Namespace is built for exactly one
// Target (spec.md §5: "all mutation happens within one call graph").
type Target struct {
	Name string `yaml:"name"`

	// AddressLength is the byte width of the Address type.
	AddressLength int `yaml:"address_length"`
	// ValueLength is the byte width of a balance/value amount.
	ValueLength int `yaml:"value_length"`
	// PointerLength is the byte width of an in-memory reference.
	PointerLength int `yaml:"pointer_length"`
	// SelectorLength is the byte width of a function selector (spec.md §6).
	SelectorLength int `yaml:"selector_length"`

	// Storage selects which lowering strategy internal/storage uses.
	Storage StorageModel `yaml:"-"`
}

// EVMWasm targets the WebAssembly-hosted, EVM-compatible runtime named in
// spec.md §1: 20-byte addresses, 32-byte values, 4-byte selectors.
var EVMWasm = Target{
	Name:           "evm-wasm",
	AddressLength:  20,
	ValueLength:    32,
	PointerLength:  4,
	SelectorLength: 4,
	Storage:        Slots,
}

// Substrate targets the WebAssembly-hosted contract runtime: 32-byte
// addresses (account ids), 16-byte values, 4-byte selectors.
var Substrate = Target{
	Name:           "substrate",
	AddressLength:  32,
	ValueLength:    16,
	PointerLength:  4,
	SelectorLength: 4,
	Storage:        Slots,
}

// BPF targets the BPF-hosted contract runtime: 32-byte addresses, 8-byte
// values (lamports), 8-byte pointers, and the account-buffer storage model
// instead of keccak-derived slots.
var BPF = Target{
	Name:           "bpf",
	AddressLength:  32,
	ValueLength:    8,
	PointerLength:  8,
	SelectorLength: 8,
	Storage:        AccountBuffer,
}

// Load parses a YAML-encoded target profile, for callers that need a target
// other than the three built-in ones (e.g. a custom fork with different
// address/value widths). The "storage" field, if present, must be "slots"
// or "account-buffer"; it defaults to Slots.
func Load(data []byte) (Target, error) {
	var doc struct {
		Target  `yaml:",inline"`
		Storage string `yaml:"storage"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Target{}, fmt.Errorf("target: parsing profile: %w", err)
	}

	switch doc.Storage {
	case "", "slots":
		doc.Target.Storage = Slots
	case "account-buffer":
		doc.Target.Storage = AccountBuffer
	default:
		return Target{}, fmt.Errorf("target: unknown storage model %q", doc.Storage)
	}

	if doc.Target.AddressLength <= 0 || doc.Target.SelectorLength <= 0 {
		return Target{}, fmt.Errorf("target: profile %q missing required fields", doc.Target.Name)
	}

	return doc.Target, nil
}
