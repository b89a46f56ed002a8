package gm2

import (
	"fmt"

	"github.com/vsariola/motif/gm"
	"golang.org/x/text/cases"
)

// Program identifies one of the 256 sounds of the General MIDI Level 2 melodic
// sound set. Each sound is a variation of a General MIDI Level 1 program,
// selected with the bank select controllers before the program change.
type Program uint16

const (
	AcousticGrandPiano Program = iota
	AcousticGrandPianoWide
	AcousticGrandPianoDark
	BrightAcousticPiano
	BrightAcousticPianoWide
	ElectricGrandPiano
	ElectricGrandPianoWide
	HonkyTonkPiano
	HonkyTonkPianoWide
	ElectricPiano1
	DetunedElectricPiano1
	ElectricPiano1VelocityMix
	SixtiesElectricPiano
	ElectricPiano2
	DetunedElectricPiano2
	ElectricPiano2VelocityMix
	EpLegend
	EpPhase
	Harpsichord
	HarpsichordOctaveMix
	HarpsichordWide
	HarpsichordWithKeyOff
	Clavi
	PulseClavi

	Celesta
	Glockenspiel
	MusicBox
	Vibraphone
	VibraphoneWide
	Marimba
	MarimbaWide
	Xylophone
	TubularBells
	ChurchBell
	Carillon
	Dulcimer

	DrawbarOrgan
	DetunedDrawbarOrgan
	ItalianSixtiesOrgan
	DrawbarOrgan2
	PercussiveOrgan
	DetunedPercussiveOrgan
	PercussiveOrgan2
	RockOrgan
	ChurchOrgan
	ChurchOrganOctaveMix
	DetunedChurchOrgan
	ReedOrgan
	PuffOrgan
	Accordion
	Accordion2
	Harmonica
	TangoAccordion

	AcousticGuitarNylon
	Ukulele
	AcousticGuitarNylonKeyOff
	AcousticGuitarNylon2
	AcousticGuitarSteel
	TwelveStringsGuitar
	Mandolin
	SteelGuitarWithBodySound
	ElectricGuitarJazz
	ElectricGuitarPedalSteel
	ElectricGuitarClean
	ElectricGuitarDetunedClean
	MidToneGuitar
	ElectricGuitarMuted
	ElectricGuitarFunkyCutting
	ElectricGuitarMutedVeloSw
	JazzMan
	OverdrivenGuitar
	GuitarPinch
	DistortionGuitar
	DistortionGuitarWithFeedback
	DistortedRhythmGuitar
	GuitarHarmonics
	GuitarFeedback

	AcousticBass
	ElectricBassFinger
	FingerSlapBass
	ElectricBassPick
	FretlessBass
	SlapBass1
	SlapBass2
	SynthBass1
	SynthBassWarm
	SynthBass3Resonance
	ClaviBass
	Hammer
	SynthBass2
	SynthBass4Attack
	SynthBassRubber
	AttackPulse

	Violin
	ViolinSlowAttack
	Viola
	Cello
	Contrabass
	TremoloStrings
	PizzicatoStrings
	OrchestralHarp
	YangChin
	Timpani

	StringEnsemble1
	StringsAndBrass
	SixtiesStrings
	StringEnsemble2
	SynthStrings1
	SynthStrings3
	SynthStrings2
	ChoirAahs
	ChoirAahs2
	VoiceOohs
	Humming
	SynthVoice
	AnalogVoice
	OrchestraHit
	BassHitPlus
	SixthHit
	EuroHit

	Trumpet
	DarkTrumpetSoft
	Trombone
	Trombone2
	BrightTrombone
	Tuba
	MutedTrumpet
	MutedTrumpet2
	FrenchHorn
	FrenchHorn2Warm
	BrassSection
	BrassSection2OctaveMix
	SynthBrass1
	SynthBrass3
	AnalogSynthBrass1
	JumpBrass
	SynthBrass2
	SynthBrass4
	AnalogSynthBrass2

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
	Lead1aSquare2
	Lead1bSine
	Lead2Sawtooth
	Lead2aSawtooth2
	Lead2bSawPlusPulse
	Lead2cDoubleSawtooth
	Lead2dSequencedAnalog
	Lead3Calliope
	Lead4Chiff
	Lead5Charang
	Lead5aWireLead
	Lead6Voice
	Lead7Fifths
	Lead8BassPlusLead
	Lead8aSoftWrl

	Pad1NewAge
	Pad2Warm
	Pad2aSinePad
	Pad3Polysynth
	Pad4Choir
	Pad4aItopia
	Pad5Bowed
	Pad6Metallic
	Pad7Halo
	Pad8Sweep

	Fx1Rain
	Fx2Soundtrack
	Fx3Crystal
	Fx3aSynthMallet
	Fx4Atmosphere
	Fx5Brightness
	Fx6Goblins
	Fx7Echoes
	Fx7aEchoBell
	Fx7bEchoPan
	Fx8SciFi

	Sitar
	Sitar2Bend
	Banjo
	Shamisen
	Koto
	TaishoKoto
	Kalimba
	BagPipe
	Fiddle
	Shanai

	TinkleBell
	Agogo
	SteelDrums
	Woodblock
	Castanets
	TaikoDrum
	ConcertBassDrum
	MelodicTom
	MelodicTom2Power
	SynthDrum
	RhythmBoxTom
	ElectricDrum
	ReverseCymbal

	GuitarFretNoise
	GuitarCuttingNoise
	AcousticBassStringSlap
	BreathNoise
	FluteKeyClick
	Seashore
	Rain
	Thunder
	Wind
	Stream
	Bubble
	BirdTweet
	Dog
	HorseGallop
	BirdTweet2
	TelephoneRing
	TelephoneRing2
	DoorCreaking
	Door
	Scratch
	WindChime
	Helicopter
	CarEngine
	CarStop
	CarPass
	CarCrash
	Siren
	Train
	Jetplane
	Starship
	BurstNoise
	Applause
	Laughing
	Screaming
	Punch
	HeartBeat
	Footsteps
	Gunshot
	MachineGun
	Lasergun
	Explosion
)

// NumPrograms is the number of sounds in the General MIDI Level 2 melodic set.
const NumPrograms = 256

// MelodicBankMSB is the bank select MSB of every melodic General MIDI Level 2
// sound.
const MelodicBankMSB = 0x79

// Bank is the bank select and base program of a General MIDI Level 2 sound.
type Bank struct {
	MSB  uint8
	LSB  uint8
	Base gm.Program
}

type entry struct {
	name string
	base gm.Program
	lsb  uint8
}

var entries = [NumPrograms]entry{
	{"AcousticGrandPiano", gm.AcousticGrandPiano, 0},
	{"AcousticGrandPianoWide", gm.AcousticGrandPiano, 1},
	{"AcousticGrandPianoDark", gm.AcousticGrandPiano, 2},
	{"BrightAcousticPiano", gm.BrightAcousticPiano, 0},
	{"BrightAcousticPianoWide", gm.BrightAcousticPiano, 1},
	{"ElectricGrandPiano", gm.ElectricGrandPiano, 0},
	{"ElectricGrandPianoWide", gm.ElectricGrandPiano, 1},
	{"HonkyTonkPiano", gm.HonkyTonkPiano, 0},
	{"HonkyTonkPianoWide", gm.HonkyTonkPiano, 1},
	{"ElectricPiano1", gm.ElectricPiano1, 0},
	{"DetunedElectricPiano1", gm.ElectricPiano1, 1},
	{"ElectricPiano1VelocityMix", gm.ElectricPiano1, 2},
	{"SixtiesElectricPiano", gm.ElectricPiano1, 3},
	{"ElectricPiano2", gm.ElectricPiano2, 0},
	{"DetunedElectricPiano2", gm.ElectricPiano2, 1},
	{"ElectricPiano2VelocityMix", gm.ElectricPiano2, 2},
	{"EpLegend", gm.ElectricPiano2, 3},
	{"EpPhase", gm.ElectricPiano2, 4},
	{"Harpsichord", gm.Harpsichord, 0},
	{"HarpsichordOctaveMix", gm.Harpsichord, 1},
	{"HarpsichordWide", gm.Harpsichord, 2},
	{"HarpsichordWithKeyOff", gm.Harpsichord, 3},
	{"Clavi", gm.Clavi, 0},
	{"PulseClavi", gm.Clavi, 1},
	{"Celesta", gm.Celesta, 0},
	{"Glockenspiel", gm.Glockenspiel, 0},
	{"MusicBox", gm.MusicBox, 0},
	{"Vibraphone", gm.Vibraphone, 0},
	{"VibraphoneWide", gm.Vibraphone, 1},
	{"Marimba", gm.Marimba, 0},
	{"MarimbaWide", gm.Marimba, 1},
	{"Xylophone", gm.Xylophone, 0},
	{"TubularBells", gm.TubularBells, 0},
	{"ChurchBell", gm.TubularBells, 1},
	{"Carillon", gm.TubularBells, 2},
	{"Dulcimer", gm.Dulcimer, 0},
	{"DrawbarOrgan", gm.DrawbarOrgan, 0},
	{"DetunedDrawbarOrgan", gm.DrawbarOrgan, 1},
	{"ItalianSixtiesOrgan", gm.DrawbarOrgan, 2},
	{"DrawbarOrgan2", gm.DrawbarOrgan, 3},
	{"PercussiveOrgan", gm.PercussiveOrgan, 0},
	{"DetunedPercussiveOrgan", gm.PercussiveOrgan, 1},
	{"PercussiveOrgan2", gm.PercussiveOrgan, 2},
	{"RockOrgan", gm.RockOrgan, 0},
	{"ChurchOrgan", gm.ChurchOrgan, 0},
	{"ChurchOrganOctaveMix", gm.ChurchOrgan, 1},
	{"DetunedChurchOrgan", gm.ChurchOrgan, 2},
	{"ReedOrgan", gm.ReedOrgan, 0},
	{"PuffOrgan", gm.ReedOrgan, 1},
	{"Accordion", gm.Accordion, 0},
	{"Accordion2", gm.Accordion, 1},
	{"Harmonica", gm.Harmonica, 0},
	{"TangoAccordion", gm.TangoAccordion, 0},
	{"AcousticGuitarNylon", gm.AcousticGuitarNylon, 0},
	{"Ukulele", gm.AcousticGuitarNylon, 1},
	{"AcousticGuitarNylonKeyOff", gm.AcousticGuitarNylon, 2},
	{"AcousticGuitarNylon2", gm.AcousticGuitarNylon, 3},
	{"AcousticGuitarSteel", gm.AcousticGuitarSteel, 0},
	{"TwelveStringsGuitar", gm.AcousticGuitarSteel, 1},
	{"Mandolin", gm.AcousticGuitarSteel, 2},
	{"SteelGuitarWithBodySound", gm.AcousticGuitarSteel, 3},
	{"ElectricGuitarJazz", gm.ElectricGuitarJazz, 0},
	{"ElectricGuitarPedalSteel", gm.ElectricGuitarJazz, 1},
	{"ElectricGuitarClean", gm.ElectricGuitarClean, 0},
	{"ElectricGuitarDetunedClean", gm.ElectricGuitarClean, 1},
	{"MidToneGuitar", gm.ElectricGuitarClean, 2},
	{"ElectricGuitarMuted", gm.ElectricGuitarMuted, 0},
	{"ElectricGuitarFunkyCutting", gm.ElectricGuitarMuted, 1},
	{"ElectricGuitarMutedVeloSw", gm.ElectricGuitarMuted, 2},
	{"JazzMan", gm.ElectricGuitarMuted, 3},
	{"OverdrivenGuitar", gm.OverdrivenGuitar, 0},
	{"GuitarPinch", gm.OverdrivenGuitar, 1},
	{"DistortionGuitar", gm.DistortionGuitar, 0},
	{"DistortionGuitarWithFeedback", gm.DistortionGuitar, 1},
	{"DistortedRhythmGuitar", gm.DistortionGuitar, 2},
	{"GuitarHarmonics", gm.GuitarHarmonics, 0},
	{"GuitarFeedback", gm.GuitarHarmonics, 1},
	{"AcousticBass", gm.AcousticBass, 0},
	{"ElectricBassFinger", gm.ElectricBassFinger, 0},
	{"FingerSlapBass", gm.ElectricBassFinger, 1},
	{"ElectricBassPick", gm.ElectricBassPick, 0},
	{"FretlessBass", gm.FretlessBass, 0},
	{"SlapBass1", gm.SlapBass1, 0},
	{"SlapBass2", gm.SlapBass2, 0},
	{"SynthBass1", gm.SynthBass1, 0},
	{"SynthBassWarm", gm.SynthBass1, 1},
	{"SynthBass3Resonance", gm.SynthBass1, 2},
	{"ClaviBass", gm.SynthBass1, 3},
	{"Hammer", gm.SynthBass1, 4},
	{"SynthBass2", gm.SynthBass2, 0},
	{"SynthBass4Attack", gm.SynthBass2, 1},
	{"SynthBassRubber", gm.SynthBass2, 2},
	{"AttackPulse", gm.SynthBass2, 3},
	{"Violin", gm.Violin, 0},
	{"ViolinSlowAttack", gm.Violin, 1},
	{"Viola", gm.Viola, 0},
	{"Cello", gm.Cello, 0},
	{"Contrabass", gm.Contrabass, 0},
	{"TremoloStrings", gm.TremoloStrings, 0},
	{"PizzicatoStrings", gm.PizzicatoStrings, 0},
	{"OrchestralHarp", gm.OrchestralHarp, 0},
	{"YangChin", gm.OrchestralHarp, 1},
	{"Timpani", gm.Timpani, 0},
	{"StringEnsemble1", gm.StringEnsemble1, 0},
	{"StringsAndBrass", gm.StringEnsemble1, 1},
	{"SixtiesStrings", gm.StringEnsemble1, 2},
	{"StringEnsemble2", gm.StringEnsemble2, 0},
	{"SynthStrings1", gm.SynthStrings1, 0},
	{"SynthStrings3", gm.SynthStrings1, 1},
	{"SynthStrings2", gm.SynthStrings2, 0},
	{"ChoirAahs", gm.ChoirAahs, 0},
	{"ChoirAahs2", gm.ChoirAahs, 1},
	{"VoiceOohs", gm.VoiceOohs, 0},
	{"Humming", gm.VoiceOohs, 1},
	{"SynthVoice", gm.SynthVoice, 0},
	{"AnalogVoice", gm.SynthVoice, 1},
	{"OrchestraHit", gm.OrchestraHit, 0},
	{"BassHitPlus", gm.OrchestraHit, 1},
	{"SixthHit", gm.OrchestraHit, 2},
	{"EuroHit", gm.OrchestraHit, 3},
	{"Trumpet", gm.Trumpet, 0},
	{"DarkTrumpetSoft", gm.Trumpet, 1},
	{"Trombone", gm.Trombone, 0},
	{"Trombone2", gm.Trombone, 1},
	{"BrightTrombone", gm.Trombone, 2},
	{"Tuba", gm.Tuba, 0},
	{"MutedTrumpet", gm.MutedTrumpet, 0},
	{"MutedTrumpet2", gm.MutedTrumpet, 1},
	{"FrenchHorn", gm.FrenchHorn, 0},
	{"FrenchHorn2Warm", gm.FrenchHorn, 1},
	{"BrassSection", gm.BrassSection, 0},
	{"BrassSection2OctaveMix", gm.BrassSection, 1},
	{"SynthBrass1", gm.SynthBrass1, 0},
	{"SynthBrass3", gm.SynthBrass1, 1},
	{"AnalogSynthBrass1", gm.SynthBrass1, 2},
	{"JumpBrass", gm.SynthBrass1, 3},
	{"SynthBrass2", gm.SynthBrass2, 0},
	{"SynthBrass4", gm.SynthBrass2, 1},
	{"AnalogSynthBrass2", gm.SynthBrass2, 2},
	{"SopranoSax", gm.SopranoSax, 0},
	{"AltoSax", gm.AltoSax, 0},
	{"TenorSax", gm.TenorSax, 0},
	{"BaritoneSax", gm.BaritoneSax, 0},
	{"Oboe", gm.Oboe, 0},
	{"EnglishHorn", gm.EnglishHorn, 0},
	{"Bassoon", gm.Bassoon, 0},
	{"Clarinet", gm.Clarinet, 0},
	{"Piccolo", gm.Piccolo, 0},
	{"Flute", gm.Flute, 0},
	{"Recorder", gm.Recorder, 0},
	{"PanFlute", gm.PanFlute, 0},
	{"BlownBottle", gm.BlownBottle, 0},
	{"Shakuhachi", gm.Shakuhachi, 0},
	{"Whistle", gm.Whistle, 0},
	{"Ocarina", gm.Ocarina, 0},
	{"Lead1Square", gm.Lead1Square, 0},
	{"Lead1aSquare2", gm.Lead1Square, 1},
	{"Lead1bSine", gm.Lead1Square, 2},
	{"Lead2Sawtooth", gm.Lead2Sawtooth, 0},
	{"Lead2aSawtooth2", gm.Lead2Sawtooth, 1},
	{"Lead2bSawPlusPulse", gm.Lead2Sawtooth, 2},
	{"Lead2cDoubleSawtooth", gm.Lead2Sawtooth, 3},
	{"Lead2dSequencedAnalog", gm.Lead2Sawtooth, 4},
	{"Lead3Calliope", gm.Lead3Calliope, 0},
	{"Lead4Chiff", gm.Lead4Chiff, 0},
	{"Lead5Charang", gm.Lead5Charang, 0},
	{"Lead5aWireLead", gm.Lead5Charang, 1},
	{"Lead6Voice", gm.Lead6Voice, 0},
	{"Lead7Fifths", gm.Lead7Fifths, 0},
	{"Lead8BassPlusLead", gm.Lead8BassPlusLead, 0},
	{"Lead8aSoftWrl", gm.Lead8BassPlusLead, 1},
	{"Pad1NewAge", gm.Pad1NewAge, 0},
	{"Pad2Warm", gm.Pad2Warm, 0},
	{"Pad2aSinePad", gm.Pad2Warm, 1},
	{"Pad3Polysynth", gm.Pad3Polysynth, 0},
	{"Pad4Choir", gm.Pad4Choir, 0},
	{"Pad4aItopia", gm.Pad4Choir, 1},
	{"Pad5Bowed", gm.Pad5Bowed, 0},
	{"Pad6Metallic", gm.Pad6Metallic, 0},
	{"Pad7Halo", gm.Pad7Halo, 0},
	{"Pad8Sweep", gm.Pad8Sweep, 0},
	{"Fx1Rain", gm.Fx1Rain, 0},
	{"Fx2Soundtrack", gm.Fx2Soundtrack, 0},
	{"Fx3Crystal", gm.Fx3Crystal, 0},
	{"Fx3aSynthMallet", gm.Fx3Crystal, 1},
	{"Fx4Atmosphere", gm.Fx4Atmosphere, 0},
	{"Fx5Brightness", gm.Fx5Brightness, 0},
	{"Fx6Goblins", gm.Fx6Goblins, 0},
	{"Fx7Echoes", gm.Fx7Echoes, 0},
	{"Fx7aEchoBell", gm.Fx7Echoes, 1},
	{"Fx7bEchoPan", gm.Fx7Echoes, 2},
	{"Fx8SciFi", gm.Fx8SciFi, 0},
	{"Sitar", gm.Sitar, 0},
	{"Sitar2Bend", gm.Sitar, 1},
	{"Banjo", gm.Banjo, 0},
	{"Shamisen", gm.Shamisen, 0},
	{"Koto", gm.Koto, 0},
	{"TaishoKoto", gm.Koto, 1},
	{"Kalimba", gm.Kalimba, 0},
	{"BagPipe", gm.BagPipe, 0},
	{"Fiddle", gm.Fiddle, 0},
	{"Shanai", gm.Shanai, 0},
	{"TinkleBell", gm.TinkleBell, 0},
	{"Agogo", gm.Agogo, 0},
	{"SteelDrums", gm.SteelDrums, 0},
	{"Woodblock", gm.Woodblock, 0},
	{"Castanets", gm.Woodblock, 1},
	{"TaikoDrum", gm.TaikoDrum, 0},
	{"ConcertBassDrum", gm.TaikoDrum, 1},
	{"MelodicTom", gm.MelodicTom, 0},
	{"MelodicTom2Power", gm.MelodicTom, 1},
	{"SynthDrum", gm.SynthDrum, 0},
	{"RhythmBoxTom", gm.SynthDrum, 1},
	{"ElectricDrum", gm.SynthDrum, 2},
	{"ReverseCymbal", gm.ReverseCymbal, 0},
	{"GuitarFretNoise", gm.GuitarFretNoise, 0},
	{"GuitarCuttingNoise", gm.GuitarFretNoise, 1},
	{"AcousticBassStringSlap", gm.GuitarFretNoise, 2},
	{"BreathNoise", gm.BreathNoise, 0},
	{"FluteKeyClick", gm.BreathNoise, 1},
	{"Seashore", gm.Seashore, 0},
	{"Rain", gm.Seashore, 1},
	{"Thunder", gm.Seashore, 2},
	{"Wind", gm.Seashore, 3},
	{"Stream", gm.Seashore, 4},
	{"Bubble", gm.Seashore, 5},
	{"BirdTweet", gm.BirdTweet, 0},
	{"Dog", gm.BirdTweet, 1},
	{"HorseGallop", gm.BirdTweet, 2},
	{"BirdTweet2", gm.BirdTweet, 3},
	{"TelephoneRing", gm.TelephoneRing, 0},
	{"TelephoneRing2", gm.TelephoneRing, 1},
	{"DoorCreaking", gm.TelephoneRing, 2},
	{"Door", gm.TelephoneRing, 3},
	{"Scratch", gm.TelephoneRing, 4},
	{"WindChime", gm.TelephoneRing, 5},
	{"Helicopter", gm.Helicopter, 0},
	{"CarEngine", gm.Helicopter, 1},
	{"CarStop", gm.Helicopter, 2},
	{"CarPass", gm.Helicopter, 3},
	{"CarCrash", gm.Helicopter, 4},
	{"Siren", gm.Helicopter, 5},
	{"Train", gm.Helicopter, 6},
	{"Jetplane", gm.Helicopter, 7},
	{"Starship", gm.Helicopter, 8},
	{"BurstNoise", gm.Helicopter, 9},
	{"Applause", gm.Applause, 0},
	{"Laughing", gm.Applause, 1},
	{"Screaming", gm.Applause, 2},
	{"Punch", gm.Applause, 3},
	{"HeartBeat", gm.Applause, 4},
	{"Footsteps", gm.Applause, 5},
	{"Gunshot", gm.Gunshot, 0},
	{"MachineGun", gm.Gunshot, 1},
	{"Lasergun", gm.Gunshot, 2},
	{"Explosion", gm.Gunshot, 3},
}

var programsByName = make(map[string]Program, NumPrograms)

func init() {
	for i, e := range entries {
		programsByName[cases.Fold().String(e.name)] = Program(i)
	}
}

// Info returns the bank select values and the base General MIDI program of a
// General MIDI Level 2 sound.
func Info(p Program) (Bank, error) {
	if int(p) >= NumPrograms {
		return Bank{}, &gm.UnknownProgramError{Kind: "General MIDI 2", Value: int(p)}
	}
	e := entries[p]
	return Bank{MSB: MelodicBankMSB, LSB: e.lsb, Base: e.base}, nil
}

// ProgramByName looks up a sound by its identifier, ignoring case.
func ProgramByName(name string) (Program, error) {
	p, ok := programsByName[cases.Fold().String(name)]
	if !ok {
		return 0, &gm.UnknownProgramError{Kind: "General MIDI 2", Name: name, Value: -1}
	}
	return p, nil
}

func (p Program) String() string {
	if int(p) < NumPrograms {
		return entries[p].name
	}
	return fmt.Sprintf("Program(%d)", uint16(p))
}
