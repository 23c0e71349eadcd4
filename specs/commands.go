package specs

// Shape is the visual block shape a command spec is drawn with.
type Shape string

// Block shapes.
const (
	ShapeStack    Shape = "stack"
	ShapeHat      Shape = "hat"
	ShapeCap      Shape = "cap"
	ShapeReporter Shape = "reporter"
	ShapeBoolean  Shape = "boolean"
	ShapeC        Shape = "c-block"
	ShapeCapC     Shape = "c-block cap"
	ShapeIfElse   Shape = "if-block"
	ShapeCelse    Shape = "celse"
	ShapeCend     Shape = "cend"
	ShapeRing     Shape = "ring"
)

// Command describes one block of the Scratch 2 palette as scratchblocks
// knows it. Spec is the English text the translation catalogs use as msgid.
type Command struct {
	Spec     string
	Shape    Shape
	Category string
	Selector string
}

// Commands lists every block spec scratchblocks can render, in palette
// order. A spec may appear more than once when it differs only in selector
// (sprite vs. stage variants, obsolete 1.4 aliases).
var Commands = []Command{
	// motion
	{"move %n steps", ShapeStack, "motion", "forward:"},
	{"turn @turnRight %n degrees", ShapeStack, "motion", "turnRight:"},
	{"turn @turnLeft %n degrees", ShapeStack, "motion", "turnLeft:"},
	{"point in direction %d.direction", ShapeStack, "motion", "heading:"},
	{"point towards %m.spriteOrMouse", ShapeStack, "motion", "pointTowards:"},
	{"go to x:%n y:%n", ShapeStack, "motion", "gotoX:y:"},
	{"go to %m.location", ShapeStack, "motion", "gotoSpriteOrMouse:"},
	{"glide %n secs to x:%n y:%n", ShapeStack, "motion", "glideSecs:toX:y:elapsed:from:"},
	{"change x by %n", ShapeStack, "motion", "changeXposBy:"},
	{"set x to %n", ShapeStack, "motion", "xpos:"},
	{"change y by %n", ShapeStack, "motion", "changeYposBy:"},
	{"set y to %n", ShapeStack, "motion", "ypos:"},
	{"set rotation style %m.rotationStyle", ShapeStack, "motion", "setRotationStyle"},
	{"x position", ShapeReporter, "motion", "xpos"},
	{"y position", ShapeReporter, "motion", "ypos"},
	{"direction", ShapeReporter, "motion", "heading"},
	{"if on edge, bounce", ShapeStack, "motion", "bounceOffEdge"},

	// looks
	{"say %s for %n secs", ShapeStack, "looks", "say:duration:elapsed:from:"},
	{"say %s", ShapeStack, "looks", "say:"},
	{"think %s for %n secs", ShapeStack, "looks", "think:duration:elapsed:from:"},
	{"think %s", ShapeStack, "looks", "think:"},
	{"show", ShapeStack, "looks", "show"},
	{"hide", ShapeStack, "looks", "hide"},
	{"switch costume to %m.costume", ShapeStack, "looks", "lookLike:"},
	{"next costume", ShapeStack, "looks", "nextCostume"},
	{"next backdrop", ShapeStack, "looks", "nextScene"},
	{"switch backdrop to %m.backdrop", ShapeStack, "looks", "startScene"},
	{"switch backdrop to %m.backdrop and wait", ShapeStack, "looks", "startSceneAndWait"},
	{"change %m.effect effect by %n", ShapeStack, "looks", "changeGraphicEffect:by:"},
	{"set %m.effect effect to %n", ShapeStack, "looks", "setGraphicEffect:to:"},
	{"clear graphic effects", ShapeStack, "looks", "filterReset"},
	{"change size by %n", ShapeStack, "looks", "changeSizeBy:"},
	{"set size to %n %", ShapeStack, "looks", "setSizeTo:"},
	{"go to front", ShapeStack, "looks", "comeToFront"},
	{"go back %n layers", ShapeStack, "looks", "goBackByLayers:"},
	{"costume #", ShapeReporter, "looks", "costumeIndex"},
	{"backdrop name", ShapeReporter, "looks", "sceneName"},
	{"backdrop #", ShapeReporter, "looks", "backgroundIndex"},
	{"size", ShapeReporter, "looks", "scale"},

	// sound
	{"play sound %m.sound", ShapeStack, "sound", "playSound:"},
	{"play sound %m.sound until done", ShapeStack, "sound", "doPlaySoundAndWait"},
	{"stop all sounds", ShapeStack, "sound", "stopAllSounds"},
	{"play drum %d.drum for %n beats", ShapeStack, "sound", "playDrum"},
	{"rest for %n beats", ShapeStack, "sound", "rest:elapsed:from:"},
	{"play note %d.note for %n beats", ShapeStack, "sound", "noteOn:duration:elapsed:from:"},
	{"set instrument to %d.instrument", ShapeStack, "sound", "instrument:"},
	{"change volume by %n", ShapeStack, "sound", "changeVolumeBy:"},
	{"set volume to %n %", ShapeStack, "sound", "setVolumeTo:"},
	{"volume", ShapeReporter, "sound", "volume"},
	{"change tempo by %n", ShapeStack, "sound", "changeTempoBy:"},
	{"set tempo to %n bpm", ShapeStack, "sound", "setTempoTo:"},
	{"tempo", ShapeReporter, "sound", "tempo"},

	// pen
	{"clear", ShapeStack, "pen", "clearPenTrails"},
	{"stamp", ShapeStack, "pen", "stampCostume"},
	{"pen down", ShapeStack, "pen", "putPenDown"},
	{"pen up", ShapeStack, "pen", "putPenUp"},
	{"set pen color to %c", ShapeStack, "pen", "penColor:"},
	{"change pen color by %n", ShapeStack, "pen", "changePenHueBy:"},
	{"set pen color to %n", ShapeStack, "pen", "setPenHueTo:"},
	{"change pen shade by %n", ShapeStack, "pen", "changePenShadeBy:"},
	{"set pen shade to %n", ShapeStack, "pen", "setPenShadeTo:"},
	{"change pen size by %n", ShapeStack, "pen", "changePenSizeBy:"},
	{"set pen size to %n", ShapeStack, "pen", "penSize:"},

	// events
	{"when @greenFlag clicked", ShapeHat, "events", "whenGreenFlag"},
	{"when %m.key key pressed", ShapeHat, "events", "whenKeyPressed"},
	{"when this sprite clicked", ShapeHat, "events", "whenClicked"},
	{"when backdrop switches to %m.backdrop", ShapeHat, "events", "whenSceneStarts"},
	{"when %m.triggerSensor > %n", ShapeHat, "events", "whenSensorGreaterThan"},
	{"when I receive %m.broadcast", ShapeHat, "events", "whenIReceive"},
	{"broadcast %m.broadcast", ShapeStack, "events", "broadcast:"},
	{"broadcast %m.broadcast and wait", ShapeStack, "events", "doBroadcastAndWait"},

	// control
	{"wait %n secs", ShapeStack, "control", "wait:elapsed:from:"},
	{"repeat %n", ShapeC, "control", "doRepeat"},
	{"forever", ShapeCapC, "control", "doForever"},
	{"if %b then", ShapeC, "control", "doIf"},
	{"if %b then", ShapeIfElse, "control", "doIfElse"},
	{"wait until %b", ShapeStack, "control", "doWaitUntil"},
	{"repeat until %b", ShapeC, "control", "doUntil"},
	{"stop %m.stop", ShapeCap, "control", "stopScripts"},
	{"when I start as a clone", ShapeHat, "control", "whenCloned"},
	{"create clone of %m.spriteOnly", ShapeStack, "control", "createCloneOf"},
	{"delete this clone", ShapeCap, "control", "deleteClone"},
	{"else", ShapeCelse, "control", ""},
	{"end", ShapeCend, "control", ""},
	{". . .", ShapeStack, "grey", ""},
	{"...", ShapeStack, "grey", ""},
	{"…", ShapeStack, "grey", ""},

	// sensing
	{"touching %m.touching?", ShapeBoolean, "sensing", "touching:"},
	{"touching color %c?", ShapeBoolean, "sensing", "touchingColor:"},
	{"color %c is touching %c?", ShapeBoolean, "sensing", "color:sees:"},
	{"distance to %m.spriteOrMouse", ShapeReporter, "sensing", "distanceTo:"},
	{"ask %s and wait", ShapeStack, "sensing", "doAsk"},
	{"answer", ShapeReporter, "sensing", "answer"},
	{"key %m.key pressed?", ShapeBoolean, "sensing", "keyPressed:"},
	{"mouse down?", ShapeBoolean, "sensing", "mousePressed"},
	{"mouse x", ShapeReporter, "sensing", "mouseX"},
	{"mouse y", ShapeReporter, "sensing", "mouseY"},
	{"loudness", ShapeReporter, "sensing", "soundLevel"},
	{"video %m.videoMotionType on %m.stageOrThis", ShapeReporter, "sensing", "senseVideoMotion"},
	{"turn video %m.videoState", ShapeStack, "sensing", "setVideoState"},
	{"set video transparency to %n %", ShapeStack, "sensing", "setVideoTransparency"},
	{"timer", ShapeReporter, "sensing", "timer"},
	{"reset timer", ShapeStack, "sensing", "timerReset"},
	{"%m.attribute of %m.spriteOrStage", ShapeReporter, "sensing", "getAttribute:of:"},
	{"current %m.timeAndDate", ShapeReporter, "sensing", "timeAndDate"},
	{"days since 2000", ShapeReporter, "sensing", "timestamp"},
	{"username", ShapeReporter, "sensing", "getUserName"},
	{"user id", ShapeReporter, "sensing", "getUserId"},

	// operators
	{"%n + %n", ShapeReporter, "operators", "+"},
	{"%n - %n", ShapeReporter, "operators", "-"},
	{"%n * %n", ShapeReporter, "operators", "*"},
	{"%n / %n", ShapeReporter, "operators", "/"},
	{"pick random %n to %n", ShapeReporter, "operators", "randomFrom:to:"},
	{"%s < %s", ShapeBoolean, "operators", "<"},
	{"%s = %s", ShapeBoolean, "operators", "="},
	{"%s > %s", ShapeBoolean, "operators", ">"},
	{"%b and %b", ShapeBoolean, "operators", "&"},
	{"%b or %b", ShapeBoolean, "operators", "|"},
	{"not %b", ShapeBoolean, "operators", "not"},
	{"join %s %s", ShapeReporter, "operators", "concatenate:with:"},
	{"letter %n of %s", ShapeReporter, "operators", "letter:of:"},
	{"length of %s", ShapeReporter, "operators", "stringLength:"},
	{"%n mod %n", ShapeReporter, "operators", "%"},
	{"round %n", ShapeReporter, "operators", "rounded"},
	{"%m.mathOp of %n", ShapeReporter, "operators", "computeFunction:of:"},

	// variables and lists
	{"set %m.var to %s", ShapeStack, "variables", "setVar:to:"},
	{"change %m.var by %n", ShapeStack, "variables", "changeVar:by:"},
	{"show variable %m.var", ShapeStack, "variables", "showVariable:"},
	{"hide variable %m.var", ShapeStack, "variables", "hideVariable:"},
	{"add %s to %m.list", ShapeStack, "list", "append:toList:"},
	{"delete %d.listDeleteItem of %m.list", ShapeStack, "list", "deleteLine:ofList:"},
	{"insert %s at %d.listItem of %m.list", ShapeStack, "list", "insert:at:ofList:"},
	{"replace item %d.listItem of %m.list with %s", ShapeStack, "list", "setLine:ofList:to:"},
	{"item %d.listItem of %m.list", ShapeReporter, "list", "getLine:ofList:"},
	{"length of %m.list", ShapeReporter, "list", "lineCountOfList:"},
	{"%m.list contains %s?", ShapeBoolean, "list", "list:contains:"},
	{"show list %m.list", ShapeStack, "list", "showList:"},
	{"hide list %m.list", ShapeStack, "list", "hideList:"},

	// more blocks and custom block inputs
	{"%n @addInput", ShapeRing, "custom-arg", ""},

	// extensions (PicoBoard, LEGO WeDo)
	{"when distance < %n", ShapeHat, "extension", "whenDistanceLessThan"},
	{"when tilt = %n", ShapeHat, "extension", "whenTiltIs"},
	{"turn %m.motor on for %n secs", ShapeStack, "extension", "motorOnFor:elapsed:from:"},
	{"turn %m.motor on", ShapeStack, "extension", "allMotorsOn"},
	{"turn %m.motor off", ShapeStack, "extension", "allMotorsOff"},
	{"set %m.motor power to %n", ShapeStack, "extension", "startMotorPower"},
	{"set %m.motor2 direction to %m.motorDirection", ShapeStack, "extension", "setMotorDirection"},
	{"distance", ShapeReporter, "extension", "getDistance"},
	{"tilt", ShapeReporter, "extension", "getTilt"},
	{"sensor %m.booleanSensor?", ShapeBoolean, "sensing", "sensorPressed:"},
	{"%m.sensor sensor value", ShapeReporter, "sensing", "sensor:"},

	// obsolete Scratch 1.4 blocks still found in old projects
	{"turn %m.motor on for %n seconds", ShapeStack, "obsolete", "motorOnFor:elapsed:from:"},
	{"set light color to %n", ShapeStack, "obsolete", "setLightColor"},
	{"play note %n for %n seconds", ShapeStack, "obsolete", "noteOn:duration:elapsed:from:"},
	{"when tilted", ShapeHat, "obsolete", "whenTilted"},
	{"tilt %m.xxx", ShapeReporter, "obsolete", "getTilt"},
	{"if %b", ShapeC, "obsolete", "doIf"},
	{"if %b", ShapeIfElse, "obsolete", "doIfElse"},
	{"forever if %b", ShapeCapC, "obsolete", "doForeverIf"},
	{"stop script", ShapeCap, "obsolete", "doReturn"},
	{"stop all", ShapeCap, "obsolete", "stopAll"},
	{"switch to costume %m.costume", ShapeStack, "obsolete", "lookLike:"},
	{"next background", ShapeStack, "obsolete", "nextScene"},
	{"switch to background %m.backdrop", ShapeStack, "obsolete", "startScene"},
	{"background #", ShapeReporter, "obsolete", "backgroundIndex"},
	{"loud?", ShapeBoolean, "obsolete", "isLoud"},
}
