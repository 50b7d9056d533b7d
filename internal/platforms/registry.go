// Package platforms registers the built-in platform classifiers.
package platforms

import (
	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/platforms/biblioteca"
	"github.com/aleister1102/ecverify/internal/platforms/emerald"
	"github.com/aleister1102/ecverify/internal/platforms/europresse"
	"github.com/aleister1102/ecverify/internal/platforms/hw"
	"github.com/aleister1102/ecverify/internal/platforms/lexisnexis"
	"github.com/aleister1102/ecverify/internal/platforms/oso"
	"github.com/aleister1102/ecverify/internal/platforms/ovid"
	"github.com/aleister1102/ecverify/internal/platforms/pr"
	"github.com/aleister1102/ecverify/internal/platforms/seg"
)

// Registry returns a registry holding every built-in platform.
func Registry() *classifier.Registry {
	reg := classifier.NewRegistry()
	reg.MustRegister(biblioteca.Name, biblioteca.New)
	reg.MustRegister(emerald.Name, emerald.New)
	reg.MustRegister(europresse.Name, europresse.New)
	reg.MustRegister(hw.Name, hw.New)
	reg.MustRegister(lexisnexis.Name, lexisnexis.New)
	reg.MustRegister(oso.Name, oso.New)
	reg.MustRegister(ovid.Name, ovid.New)
	reg.MustRegister(pr.Name, pr.New)
	reg.MustRegister(seg.Name, seg.New)
	return reg
}
