package gm

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Program identifies one of the 128 General MIDI Level 1 melodic programs. The
// value of the identifier is the 7-bit program number sent in a program change.
type Program uint8

const (
	AcousticGrandPiano Program = iota
	BrightAcousticPiano
	ElectricGrandPiano
	HonkyTonkPiano
	ElectricPiano1
	ElectricPiano2
	Harpsichord
	Clavi

	Celesta
	Glockenspiel
	MusicBox
	Vibraphone
	Marimba
	Xylophone
	TubularBells
	Dulcimer

	DrawbarOrgan
	PercussiveOrgan
	RockOrgan
	ChurchOrgan
	ReedOrgan
	Accordion
	Harmonica
	TangoAccordion

	AcousticGuitarNylon
	AcousticGuitarSteel
	ElectricGuitarJazz
	ElectricGuitarClean
	ElectricGuitarMuted
	OverdrivenGuitar
	DistortionGuitar
	GuitarHarmonics

	AcousticBass
	ElectricBassFinger
	ElectricBassPick
	FretlessBass
	SlapBass1
	SlapBass2
	SynthBass1
	SynthBass2

	Violin
	Viola
	Cello
	Contrabass
	TremoloStrings
	PizzicatoStrings
	OrchestralHarp
	Timpani

	StringEnsemble1
	StringEnsemble2
	SynthStrings1
	SynthStrings2
	ChoirAahs
	VoiceOohs
	SynthVoice
	OrchestraHit

	Trumpet
	Trombone
	Tuba
	MutedTrumpet
	FrenchHorn
	BrassSection
	SynthBrass1
	SynthBrass2

	SopranoSax
	AltoSax
	TenorSax
	BaritoneSax
	Oboe
	EnglishHorn
	Bassoon
	Clarinet

	Piccolo
	Flute
	Recorder
	PanFlute
	BlownBottle
	Shakuhachi
	Whistle
	Ocarina

	Lead1Square
	Lead2Sawtooth
	Lead3Calliope
	Lead4Chiff
	Lead5Charang
	Lead6Voice
	Lead7Fifths
	Lead8BassPlusLead

	Pad1NewAge
	Pad2Warm
	Pad3Polysynth
	Pad4Choir
	Pad5Bowed
	Pad6Metallic
	Pad7Halo
	Pad8Sweep

	Fx1Rain
	Fx2Soundtrack
	Fx3Crystal
	Fx4Atmosphere
	Fx5Brightness
	Fx6Goblins
	Fx7Echoes
	Fx8SciFi

	Sitar
	Banjo
	Shamisen
	Koto
	Kalimba
	BagPipe
	Fiddle
	Shanai

	TinkleBell
	Agogo
	SteelDrums
	Woodblock
	TaikoDrum
	MelodicTom
	SynthDrum
	ReverseCymbal

	GuitarFretNoise
	BreathNoise
	Seashore
	BirdTweet
	TelephoneRing
	Helicopter
	Applause
	Gunshot
)

// NumPrograms is the number of programs in the General MIDI Level 1 sound set.
const NumPrograms = 128

var programNames = [NumPrograms]string{
	"AcousticGrandPiano", "BrightAcousticPiano", "ElectricGrandPiano", "HonkyTonkPiano",
	"ElectricPiano1", "ElectricPiano2", "Harpsichord", "Clavi",
	"Celesta", "Glockenspiel", "MusicBox", "Vibraphone",
	"Marimba", "Xylophone", "TubularBells", "Dulcimer",
	"DrawbarOrgan", "PercussiveOrgan", "RockOrgan", "ChurchOrgan",
	"ReedOrgan", "Accordion", "Harmonica", "TangoAccordion",
	"AcousticGuitarNylon", "AcousticGuitarSteel", "ElectricGuitarJazz", "ElectricGuitarClean",
	"ElectricGuitarMuted", "OverdrivenGuitar", "DistortionGuitar", "GuitarHarmonics",
	"AcousticBass", "ElectricBassFinger", "ElectricBassPick", "FretlessBass",
	"SlapBass1", "SlapBass2", "SynthBass1", "SynthBass2",
	"Violin", "Viola", "Cello", "Contrabass",
	"TremoloStrings", "PizzicatoStrings", "OrchestralHarp", "Timpani",
	"StringEnsemble1", "StringEnsemble2", "SynthStrings1", "SynthStrings2",
	"ChoirAahs", "VoiceOohs", "SynthVoice", "OrchestraHit",
	"Trumpet", "Trombone", "Tuba", "MutedTrumpet",
	"FrenchHorn", "BrassSection", "SynthBrass1", "SynthBrass2",
	"SopranoSax", "AltoSax", "TenorSax", "BaritoneSax",
	"Oboe", "EnglishHorn", "Bassoon", "Clarinet",
	"Piccolo", "Flute", "Recorder", "PanFlute",
	"BlownBottle", "Shakuhachi", "Whistle", "Ocarina",
	"Lead1Square", "Lead2Sawtooth", "Lead3Calliope", "Lead4Chiff",
	"Lead5Charang", "Lead6Voice", "Lead7Fifths", "Lead8BassPlusLead",
	"Pad1NewAge", "Pad2Warm", "Pad3Polysynth", "Pad4Choir",
	"Pad5Bowed", "Pad6Metallic", "Pad7Halo", "Pad8Sweep",
	"Fx1Rain", "Fx2Soundtrack", "Fx3Crystal", "Fx4Atmosphere",
	"Fx5Brightness", "Fx6Goblins", "Fx7Echoes", "Fx8SciFi",
	"Sitar", "Banjo", "Shamisen", "Koto",
	"Kalimba", "BagPipe", "Fiddle", "Shanai",
	"TinkleBell", "Agogo", "SteelDrums", "Woodblock",
	"TaikoDrum", "MelodicTom", "SynthDrum", "ReverseCymbal",
	"GuitarFretNoise", "BreathNoise", "Seashore", "BirdTweet",
	"TelephoneRing", "Helicopter", "Applause", "Gunshot",
}

var programsByName = make(map[string]Program, NumPrograms)

func init() {
	for i, n := range programNames {
		programsByName[fold(n)] = Program(i)
	}
}

// a Caser is stateful, so a new one is made per lookup
func fold(name string) string { return cases.Fold().String(name) }

// Number returns the 7-bit program number of a General MIDI program.
func Number(p Program) (uint8, error) {
	if int(p) >= NumPrograms {
		return 0, &UnknownProgramError{Kind: "General MIDI", Value: int(p)}
	}
	return uint8(p), nil
}

// ProgramByName looks up a program by its identifier, ignoring case, e.g.
// "birdtweet" or "BirdTweet".
func ProgramByName(name string) (Program, error) {
	p, ok := programsByName[fold(name)]
	if !ok {
		return 0, &UnknownProgramError{Kind: "General MIDI", Name: name, Value: -1}
	}
	return p, nil
}

func (p Program) String() string {
	if int(p) < NumPrograms {
		return programNames[p]
	}
	return fmt.Sprintf("Program(%d)", uint8(p))
}
