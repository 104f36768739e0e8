// Package resolver finds the game's root object pointer inside the main
// executable image.
//
// The pointer is loaded by an instruction sequence that ends in
// "mov rcx, [rip+disp32]" (48 8B 0D). The displacement that follows the
// pattern is relative to the end of the instruction.
package resolver

import (
	"fmt"

	"github.com/CodexForgeBR/colors-autosplitter/internal/process"
	"github.com/CodexForgeBR/colors-autosplitter/internal/signature"
)

// rootSignature matches "jbe +0x0C; mov rcx, [rip+disp32]".
var rootSignature = signature.MustParse("76 0C 48 8B 0D")

// dispSize is the width of the RIP-relative displacement.
const dispSize = 4

// Resolve scans module for the root pointer signature and returns the
// address of the static root pointer it references.
func Resolve(r process.Reader, module process.Module) (process.Address, error) {
	match, ok := rootSignature.ScanRange(r, module.Base, module.Size)
	if !ok {
		return 0, fmt.Errorf("signature %s not found in %s", rootSignature, module.Name)
	}
	disp := match + process.Address(rootSignature.Len())
	rel, err := process.ReadI32(r, disp)
	if err != nil {
		return 0, fmt.Errorf("read displacement at %s: %w", disp, err)
	}
	return disp.Add(dispSize + int64(rel)), nil
}

// ResolveProcess locates the first of moduleNames loaded in p and resolves
// the root pointer inside it.
func ResolveProcess(p process.Process, moduleNames []string) (process.Address, error) {
	var lastErr error
	for _, name := range moduleNames {
		mod, err := p.Module(name)
		if err != nil {
			lastErr = err
			continue
		}
		return Resolve(p, mod)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no module names given")
	}
	return 0, fmt.Errorf("locate main module: %w", lastErr)
}
