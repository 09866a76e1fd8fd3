// Package cablecode converts free-text cable specifications into vendor
// product codes.
//
// A conversion extracts the formation token from the description (for
// example "3Cx4mm2+1Cx4mm2"), classifies the cable as VFD,
// instrumentation, control, energy or unknown, and hands the description
// to the encoder bound to that category:
//
//	engine, err := cablecode.New(cablecode.Options{})
//	if err != nil {
//	    return err
//	}
//	res := engine.Convert("CABO PARA INVERSOR DE FREQUENCIA HEPR SHF1 - 3Cx4mm2+1Cx4mm2")
//	fmt.Println(res.Code) // VFD CONCENTRICO HEPR 3X4MM2 + 4MM2 SHF1 PT
//
// Failures are typed (see package internalerr) and flatten to the sentinel
// "Não consegui identificar a codificação (<reason>)" through
// cable.Result.String, so a result column stays a homogeneous column of
// strings.
//
// Rule tables come from package config and are read-only once built; an
// Engine is safe for concurrent use. Package batch applies an Engine to
// every row of a table.
package cablecode
