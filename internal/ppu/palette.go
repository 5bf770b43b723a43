package ppu

// nesPalette is the standard NTSC NES 64-entry RGB palette, indexed by
// the 6-bit value read from palette RAM (with emphasis bits ignored).
var nesPalette = [64]uint32{
	0xFF626262, 0xFF002E98, 0xFF0C11C2, 0xFF3B00C2, 0xFF650098, 0xFF7D004E, 0xFF7D0000, 0xFF651900,
	0xFF3B3800, 0xFF0C4F00, 0xFF005900, 0xFF005419, 0xFF004065, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFABABAB, 0xFF0D59F2, 0xFF443CFF, 0xFF8221F0, 0xFFB2129F, 0xFFD01547, 0xFFD0240C, 0xFFB24008,
	0xFF846000, 0xFF447900, 0xFF088500, 0xFF007F3B, 0xFF00678E, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFFFFFFF, 0xFF64A9FF, 0xFF9590FF, 0xFFD676FF, 0xFFFF6AF5, 0xFFFF6F9E, 0xFFFF7F55, 0xFFF8982B,
	0xFFCCB52A, 0xFF93D33A, 0xFF5AE058, 0xFF38DE8D, 0xFF39C9CD, 0xFF4D4D4D, 0xFF000000, 0xFF000000,
	0xFFFFFFFF, 0xFFC6DFFF, 0xFFD7D2FF, 0xFFF1C8FF, 0xFFFFC2FF, 0xFFFFC4E4, 0xFFFFCBC4, 0xFFFAD6AE,
	0xFFEAE3A2, 0xFFD2EDA2, 0xFFBCF4B0, 0xFFABF4CD, 0xFFA8ECF0, 0xFFB1B1B1, 0xFF000000, 0xFF000000,
}
