package encode

import (
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/cablecode/pkg/cablecode/cable"
	"github.com/cognicore/cablecode/pkg/cablecode/config"
	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
	"github.com/cognicore/cablecode/pkg/cablecode/rules"
)

var tables = config.MustDefault()

func TestVFDEncode(t *testing.T) {
	enc := NewVFD(tables)

	tests := []struct {
		name      string
		desc      string
		formation string
		want      string
	}{
		{
			"concentric hepr shf1",
			"CABO PARA INVERSOR DE FREQUENCIA HEPR SHF1 - 3Cx4mm2+1Cx4mm2",
			"3Cx4mm2+1Cx4mm2",
			"VFD CONCENTRICO HEPR 3X4MM2 + 4MM2 SHF1 PT",
		},
		{
			"symmetric lszh colour triple",
			"CABO VFD XLPE LSZH PRETO/BRANCO/AZUL - 3Cx 16mm2 + 3Cx 2,5mm2",
			"3Cx 16mm2 + 3Cx 2,5mm2",
			"VFD SIMETRICO 3X16MM2 + 3X2,5MM2 SHF1 (PT/BR/AZ)",
		},
		{
			"shf2 only when explicit",
			"CABO VFD SHF2 - 3Cx4mm2+1Cx4mm2",
			"3Cx4mm2+1Cx4mm2",
			"VFD CONCENTRICO 3X4MM2 + 4MM2 SHF2 PT",
		},
		{
			"shf1 checked before shf2",
			"CABO VFD SHF2 NÃO HALOGENADO - 3Cx4mm2+1Cx4mm2",
			"3Cx4mm2+1Cx4mm2",
			"VFD CONCENTRICO 3X4MM2 + 4MM2 SHF1 PT",
		},
		{
			"decimal comma and abbreviated colours",
			"CABO VFD PT/BR/VM - 3Cx2.5mm2+1Cx1.5mm2",
			"3Cx2.5mm2+1Cx1.5mm2",
			"VFD CONCENTRICO 3X2,5MM2 + 1,5MM2 (PT/BR/VM)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := enc.Encode(tt.desc, tt.formation)
			if !res.OK() {
				t.Fatalf("Encode failed: %v", res.Err)
			}
			if res.Code != tt.want {
				t.Errorf("Encode = %q, want %q", res.Code, tt.want)
			}
			if res.Category != cable.VFD {
				t.Errorf("Category = %v", res.Category)
			}
		})
	}
}

func TestVFDFailures(t *testing.T) {
	enc := NewVFD(tables)

	res := enc.Encode("CABO VFD", "4Cx4mm2")
	if !errors.Is(res.Err, internalerr.ErrInvalidFormation) {
		t.Errorf("simple formation: err = %v", res.Err)
	}
	if res.String() != "Não consegui identificar a codificação (Formação VFD inválida)" {
		t.Errorf("sentinel = %q", res.String())
	}

	res = enc.Encode("CABO VFD", "3Cx4mm2+2Cx4mm2")
	if !errors.Is(res.Err, internalerr.ErrNonStandardFormation) {
		t.Errorf("3+2: err = %v", res.Err)
	}
	if !strings.Contains(res.String(), "Formação VFD não padrão") {
		t.Errorf("sentinel = %q", res.String())
	}

	res = enc.Encode("CABO VFD", "99999999999999999999999Cx4mm2+1Cx4mm2")
	if !errors.Is(res.Err, internalerr.ErrEncodingFault) {
		t.Errorf("overflow: err = %v", res.Err)
	}
	if !strings.Contains(res.String(), "Erro VFD: ") {
		t.Errorf("sentinel = %q", res.String())
	}
}

func TestInstrumentationEncode(t *testing.T) {
	enc := NewInstrumentation(tables)

	tests := []struct {
		name      string
		desc      string
		formation string
		want      string
	}{
		{"pairs", "CABO DE INSTRUMENTACAO - 12Px2.5mm2", "12Px2.5mm2", "225 ITA PVC/E-ST1 12 FR PT"},
		{"single triad is MA", "CABO - 1Tx1,5mm2", "1Tx1,5mm2", "315 MA PVC/E-ST1 01 FR PT"},
		{"unmapped section falls back", "CABO - 4Qx4mm2", "4Qx4mm2", "44 ITA PVC/E-ST1 04 FR PT"},
		{"st2 beats shf1", "CABO ST2 SHF1 - 2Px1mm2", "2Px1mm2", "210 ITA PVC/E-ST2 02 FR PT"},
		{"halogen free", "CABO NAO HALOGENADO - 2Px1mm2", "2Px1mm2", "210 ITA PVC/E-SHF1 02 FR PT"},
		{"colour needs phrase", "CABO MARCA VERMELHO - 2Px1mm2", "2Px1mm2", "210 ITA PVC/E-ST1 02 FR PT"},
		{"colour phrase", "CABO COR CINZA - 2Px1mm2", "2Px1mm2", "210 ITA PVC/E-ST1 02 FR CZ"},
		{"colour priority", "CABO COR AZUL COR VERMELHO - 2Px1mm2", "2Px1mm2", "210 ITA PVC/E-ST1 02 FR VM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := enc.Encode(tt.desc, tt.formation)
			if !res.OK() {
				t.Fatalf("Encode failed: %v", res.Err)
			}
			if res.Code != tt.want {
				t.Errorf("Encode = %q, want %q", res.Code, tt.want)
			}
		})
	}
}

func TestInstrumentationUnmappedElement(t *testing.T) {
	custom := *tables
	custom.Elements = rules.NewElementTable(map[string]string{"P": "2"})

	res := NewInstrumentation(&custom).Encode("CABO", "3Qx1mm2")
	if res.Code != "210 ITA PVC/E-ST1 03 FR PT" {
		t.Errorf("Encode = %q", res.Code)
	}
}

func TestInstrumentationInvalid(t *testing.T) {
	res := NewInstrumentation(tables).Encode("CABO DE INSTRUMENTACAO", "4Cx1mm2")
	if !errors.Is(res.Err, internalerr.ErrInvalidFormation) {
		t.Fatalf("err = %v", res.Err)
	}
	if !strings.Contains(res.String(), "Formação de instrumentação inválida") {
		t.Errorf("sentinel = %q", res.String())
	}
}

func TestEnergyControlEncode(t *testing.T) {
	tests := []struct {
		name      string
		cat       cable.Category
		desc      string
		formation string
		want      string
	}{
		{"energy defaults", cable.Energy, "CABO DE BAIXA TENSAO - 1Cx70mm2", "1Cx70mm2", "700 CE PVC/A/ST1 01 CL5 FR PT"},
		{"control defaults", cable.Control, "CABO - 7Cx1.5mm2", "7Cx1.5mm2", "015 CM PVC/A/ST1 07 CL5 FR PT"},
		{"aluminium foil shield", cable.Control, "CABO BLINDAGEM FITA ALUMINIO - 8Cx1.5mm2", "8Cx1.5mm2", "015 CA PVC/A/ST1 08 CL5 FR PT"},
		{"foil without shield stays CM", cable.Control, "CABO FITA ALUMINIO - 8Cx1.5mm2", "8Cx1.5mm2", "015 CM PVC/A/ST1 08 CL5 FR PT"},
		{"energy ignores shield tag", cable.Energy, "CABO BLINDAGEM FITA ALUMINIO - 4Cx1.5mm2", "4Cx1.5mm2", "015 CE PVC/A/ST1 04 CL5 FR PT"},
		{"copper tape shield", cable.Control, "CABO BLINDAGEM EM FITA DE COBRE - 12Cx2.5mm2", "12Cx2.5mm2", "025 CM PVC/A/ST1 12 CL5 E FR PT"},
		{"braid beats tape", cable.Control, "CABO TRANÇA BLINDAGEM FITA COBRE - 12Cx2.5mm2", "12Cx2.5mm2", "025 CM PVC/A/ST1 12 CL5 B FR PT"},
		{"105 means PVC/E", cable.Energy, "CABO 105C - 3Cx10mm2", "3Cx10mm2", "100 CE PVC/E/ST1 03 CL5 FR PT"},
		{"xlpe beats hepr", cable.Energy, "CABO HEPR XLPE - 3Cx10mm2", "3Cx10mm2", "100 CE XLPE/ST1 03 CL5 FR PT"},
		{"st3", cable.Energy, "CABO ST3 SHF1 - 3Cx10mm2", "3Cx10mm2", "100 CE PVC/A/ST3 03 CL5 FR PT"},
		{"lszh", cable.Energy, "CABO LSZH SHF2 - 3Cx10mm2", "3Cx10mm2", "100 CE PVC/A/SHF1 03 CL5 FR PT"},
		{
			"all suffixes",
			cable.Energy,
			"CABO XLPE ST2 CLASSE 2 COR AZUL COBRE ESTANHADO ACABAMENTO CILINDRICO - 4Cx2,5mm2",
			"4Cx2,5mm2",
			"025 CE XLPE/ST2 04 CL2 FR AZ SN CIL",
		},
		{
			"green yellow ground",
			cable.Energy,
			"CABO ENERGIA IDENTIFICACAO DOS CONDUTORES PRETO/BRANCO/VERMELHO/AZUL/VERDE-AMARELO - 5Cx4mm2",
			"5Cx4mm2",
			"040 CE PVC/A/ST1 05 CL5 FR PT (PT/BR/VM/AZ/VD-AM)",
		},
		{"unmapped section", cable.Energy, "CABO - 2Cx3.5mm2", "2Cx3.5mm2", "35 CE PVC/A/ST1 02 CL5 FR PT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EncodeEnergyOrControl(tables, tt.desc, tt.formation, tt.cat)
			if !res.OK() {
				t.Fatalf("Encode failed: %v", res.Err)
			}
			if res.Code != tt.want {
				t.Errorf("Encode = %q, want %q", res.Code, tt.want)
			}
			if res.Category != tt.cat {
				t.Errorf("Category = %v, want %v", res.Category, tt.cat)
			}
		})
	}
}

func TestEnergyControlCILOnlyWhenExplicit(t *testing.T) {
	descs := []string{
		"CABO CIL FLEX - 4Cx2.5mm2",
		"CABO CILINDRO - 4Cx2.5mm2",
		"CABO - 4Cx2.5mm2",
	}
	for _, d := range descs {
		res := EncodeEnergyOrControl(tables, d, "4Cx2.5mm2", cable.Energy)
		if strings.HasSuffix(res.Code, " CIL") {
			t.Errorf("%q got CIL suffix: %q", d, res.Code)
		}
	}

	res := EncodeEnergyOrControl(tables, "CABO COM COBERTURA CILÍNDRICA - 4Cx2.5mm2", "4Cx2.5mm2", cable.Energy)
	if !strings.HasSuffix(res.Code, " CIL") {
		t.Errorf("explicit finish should add CIL: %q", res.Code)
	}
}

func TestEnergyControlFailures(t *testing.T) {
	res := EncodeEnergyOrControl(tables, "CABO", "4x2x1.5mm2", cable.Control)
	if !errors.Is(res.Err, internalerr.ErrInvalidFormation) {
		t.Errorf("generic formation: err = %v", res.Err)
	}
	if !strings.Contains(res.String(), "(Formação inválida)") {
		t.Errorf("sentinel = %q", res.String())
	}

	res = EncodeEnergyOrControl(tables, "CABO", "99999999999999999999999Cx1mm2", cable.Control)
	if !errors.Is(res.Err, internalerr.ErrEncodingFault) {
		t.Errorf("overflow: err = %v", res.Err)
	}
	if !strings.Contains(res.String(), "Erro energia/controle: ") {
		t.Errorf("sentinel = %q", res.String())
	}

	res = EncodeEnergyOrControl(tables, "CABO", "4Cx1mm2", cable.Unknown)
	if !errors.Is(res.Err, internalerr.ErrUnknownCategory) {
		t.Errorf("unknown category: err = %v", res.Err)
	}
}

func TestUnknownEncoder(t *testing.T) {
	res := Unknown{}.Encode("CABO", "4x2x1.5mm2")
	if !errors.Is(res.Err, internalerr.ErrUnknownCategory) {
		t.Fatalf("err = %v", res.Err)
	}
	if res.String() != "Não consegui identificar a codificação (Tipo de cabo desconhecido)" {
		t.Errorf("sentinel = %q", res.String())
	}
}
