package constants

// ticks per quarter note used by scores that do not state their own
const DefaultDivision = 480

const DefaultBPM = 120.0

const DefaultPort = "8080"

const EnvPrefix = "ARTICULEX"

const ConfigName = "articulex"
