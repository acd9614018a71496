// Package weapons holds the weapon name lists used to categorize kill
// log entries by weapon class.
package weapons

import "slices"

// Armor lists every vehicle-mounted weapon name.
var Armor = []string{
	// US
	"M6 37mm [M8 Greyhound]",
	"COAXIAL M1919 [M8 Greyhound]",
	"37MM CANNON [Stuart M5A1]",
	"COAXIAL M1919 [Stuart M5A1]",
	"HULL M1919 [Stuart M5A1]",
	"75MM CANNON [Sherman M4A3(75)W]",
	"COAXIAL M1919 [Sherman M4A3(75)W]",
	"HULL M1919 [Sherman M4A3(75)W]",
	"75MM M3 GUN [Sherman M4A3E2]",
	"COAXIAL M1919 [Sherman M4A3E2]",
	"HULL M1919 [Sherman M4A3E2]",
	"76MM M1 GUN [Sherman M4A3E2(76)]",
	"COAXIAL M1919 [Sherman M4A3E2(76)]",
	"HULL M1919 [Sherman M4A3E2(76)]",
	"M2 Browning [M3 Half-track]",
	// GER
	"50mm KwK 39/1 [Sd.Kfz.234 Puma]",
	"COAXIAL MG34 [Sd.Kfz.234 Puma]",
	"20MM KWK 30 [Sd.Kfz.121 Luchs]",
	"COAXIAL MG34 [Sd.Kfz.121 Luchs]",
	"75MM CANNON [Sd.Kfz.161 Panzer IV]",
	"COAXIAL MG34 [Sd.Kfz.161 Panzer IV]",
	"HULL MG34 [Sd.Kfz.161 Panzer IV]",
	"75MM CANNON [Sd.Kfz.171 Panther]",
	"COAXIAL MG34 [Sd.Kfz.171 Panther]",
	"HULL MG34 [Sd.Kfz.171 Panther]",
	"88 KWK 36 L/56 [Sd.Kfz.181 Tiger 1]",
	"COAXIAL MG34 [Sd.Kfz.181 Tiger 1]",
	"HULL MG34 [Sd.Kfz.181 Tiger 1]",
	"MG 42 [Sd.Kfz 251 Half-track]",
	// USSR
	"19-K 45MM [BA-10]",
	"COAXIAL DT [BA-10]",
	"45MM M1937 [T70]",
	"COAXIAL DT [T70]",
	"76MM ZiS-5 [T34/76]",
	"COAXIAL DT [T34/76]",
	"HULL DT [T34/76]",
	"D-5T 85MM [IS-1]",
	"COAXIAL DT [IS-1]",
	"HULL DT [IS-1]",
	"M2 Browning [M3 Half-track]",
	// GB
	"QF 2-POUNDER [Daimler]",
	"COAXIAL BESA [Daimler]",
	"QF 2-POUNDER [Tetrarch]",
	"COAXIAL BESA [Tetrarch]",
	"37MM CANNON [M3 Stuart Honey]",
	"COAXIAL M1919 [M3 Stuart Honey]",
	"HULL M1919 [M3 Stuart Honey]",
	"OQF 75MM [Cromwell]",
	"COAXIAL BESA [Cromwell]",
	"HULL BESA [Cromwell]",
	"OQF 57MM [Crusader Mk.III]",
	"COAXIAL BESA [Crusader Mk.III]",
	"QF 17-POUNDER [Firefly]",
	"COAXIAL M1919 [Firefly]",
	"OQF 57MM [Churchill Mk.III]",
	"COAXIAL BESA 7.92mm [Churchill Mk.III]",
	"HULL BESA 7.92mm [Churchill Mk.III]",
	"OQF 57MM [Churchill Mk.VII]",
	"COAXIAL BESA 7.92mm [Churchill Mk.VII]",
	"HULL BESA 7.92mm [Churchill Mk.VII]",
}

// Artillery lists the howitzer weapon names.
var Artillery = []string{
	// US
	"155MM HOWITZER [M114]",
	// GER
	"150MM HOWITZER [sFH 18]",
	// USSR
	"122MM HOWITZER [M1938 (M-30)]",
	// GB
	"QF 25-POUNDER [QF 25-Pounder]",
}

// MachineGuns lists the deployable machine gun names.
var MachineGuns = []string{
	// US
	"BROWNING M1919",
	// GER
	"MG34",
	"MG42",
	// USSR
	"DP-27",
	// GB
	"Lewis Gun",
}

func IsArmor(weapon string) bool {
	return slices.Contains(Armor, weapon)
}

func IsArtillery(weapon string) bool {
	return slices.Contains(Artillery, weapon)
}

func IsMachineGun(weapon string) bool {
	return slices.Contains(MachineGuns, weapon)
}
