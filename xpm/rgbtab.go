package xpm

// A hard coded rgb.txt. Names with trailing numbers have been dropped,
// except for the grayNN ramp, and only the "gray" spelling is stored.
// Entries must stay sorted by name as lookups use a binary search.
var rgbTable = [...]rgbRecord{
	{"aliceblue", rgb(240, 248, 255)},
	{"antiquewhite", rgb(250, 235, 215)},
	{"aquamarine", rgb(50, 191, 193)},
	{"azure", rgb(240, 255, 255)},
	{"beige", rgb(245, 245, 220)},
	{"bisque", rgb(255, 228, 196)},
	{"black", rgb(0, 0, 0)},
	{"blanchedalmond", rgb(255, 235, 205)},
	{"blue", rgb(0, 0, 255)},
	{"blueviolet", rgb(138, 43, 226)},
	{"brown", rgb(165, 42, 42)},
	{"burlywood", rgb(222, 184, 135)},
	{"cadetblue", rgb(95, 146, 158)},
	{"chartreuse", rgb(127, 255, 0)},
	{"chocolate", rgb(210, 105, 30)},
	{"coral", rgb(255, 114, 86)},
	{"cornflowerblue", rgb(34, 34, 152)},
	{"cornsilk", rgb(255, 248, 220)},
	{"cyan", rgb(0, 255, 255)},
	{"darkgoldenrod", rgb(184, 134, 11)},
	{"darkgreen", rgb(0, 86, 45)},
	{"darkkhaki", rgb(189, 183, 107)},
	{"darkolivegreen", rgb(85, 86, 47)},
	{"darkorange", rgb(255, 140, 0)},
	{"darkorchid", rgb(139, 32, 139)},
	{"darksalmon", rgb(233, 150, 122)},
	{"darkseagreen", rgb(143, 188, 143)},
	{"darkslateblue", rgb(56, 75, 102)},
	{"darkslategray", rgb(47, 79, 79)},
	{"darkturquoise", rgb(0, 166, 166)},
	{"darkviolet", rgb(148, 0, 211)},
	{"deeppink", rgb(255, 20, 147)},
	{"deepskyblue", rgb(0, 191, 255)},
	{"dimgray", rgb(84, 84, 84)},
	{"dodgerblue", rgb(30, 144, 255)},
	{"firebrick", rgb(142, 35, 35)},
	{"floralwhite", rgb(255, 250, 240)},
	{"forestgreen", rgb(80, 159, 105)},
	{"gainsboro", rgb(220, 220, 220)},
	{"ghostwhite", rgb(248, 248, 255)},
	{"gold", rgb(218, 170, 0)},
	{"goldenrod", rgb(239, 223, 132)},
	{"gray", rgb(126, 126, 126)},
	{"gray0", rgb(0, 0, 0)},
	{"gray1", rgb(3, 3, 3)},
	{"gray10", rgb(26, 26, 26)},
	{"gray100", rgb(255, 255, 255)},
	{"gray11", rgb(28, 28, 28)},
	{"gray12", rgb(31, 31, 31)},
	{"gray13", rgb(33, 33, 33)},
	{"gray14", rgb(36, 36, 36)},
	{"gray15", rgb(38, 38, 38)},
	{"gray16", rgb(41, 41, 41)},
	{"gray17", rgb(43, 43, 43)},
	{"gray18", rgb(46, 46, 46)},
	{"gray19", rgb(48, 48, 48)},
	{"gray2", rgb(5, 5, 5)},
	{"gray20", rgb(51, 51, 51)},
	{"gray21", rgb(54, 54, 54)},
	{"gray22", rgb(56, 56, 56)},
	{"gray23", rgb(59, 59, 59)},
	{"gray24", rgb(61, 61, 61)},
	{"gray25", rgb(64, 64, 64)},
	{"gray26", rgb(66, 66, 66)},
	{"gray27", rgb(69, 69, 69)},
	{"gray28", rgb(71, 71, 71)},
	{"gray29", rgb(74, 74, 74)},
	{"gray3", rgb(8, 8, 8)},
	{"gray30", rgb(77, 77, 77)},
	{"gray31", rgb(79, 79, 79)},
	{"gray32", rgb(82, 82, 82)},
	{"gray33", rgb(84, 84, 84)},
	{"gray34", rgb(87, 87, 87)},
	{"gray35", rgb(89, 89, 89)},
	{"gray36", rgb(92, 92, 92)},
	{"gray37", rgb(94, 94, 94)},
	{"gray38", rgb(97, 97, 97)},
	{"gray39", rgb(99, 99, 99)},
	{"gray4", rgb(10, 10, 10)},
	{"gray40", rgb(102, 102, 102)},
	{"gray41", rgb(105, 105, 105)},
	{"gray42", rgb(107, 107, 107)},
	{"gray43", rgb(110, 110, 110)},
	{"gray44", rgb(112, 112, 112)},
	{"gray45", rgb(115, 115, 115)},
	{"gray46", rgb(117, 117, 117)},
	{"gray47", rgb(120, 120, 120)},
	{"gray48", rgb(122, 122, 122)},
	{"gray49", rgb(125, 125, 125)},
	{"gray5", rgb(13, 13, 13)},
	{"gray50", rgb(127, 127, 127)},
	{"gray51", rgb(130, 130, 130)},
	{"gray52", rgb(133, 133, 133)},
	{"gray53", rgb(135, 135, 135)},
	{"gray54", rgb(138, 138, 138)},
	{"gray55", rgb(140, 140, 140)},
	{"gray56", rgb(143, 143, 143)},
	{"gray57", rgb(145, 145, 145)},
	{"gray58", rgb(148, 148, 148)},
	{"gray59", rgb(150, 150, 150)},
	{"gray6", rgb(15, 15, 15)},
	{"gray60", rgb(153, 153, 153)},
	{"gray61", rgb(156, 156, 156)},
	{"gray62", rgb(158, 158, 158)},
	{"gray63", rgb(161, 161, 161)},
	{"gray64", rgb(163, 163, 163)},
	{"gray65", rgb(166, 166, 166)},
	{"gray66", rgb(168, 168, 168)},
	{"gray67", rgb(171, 171, 171)},
	{"gray68", rgb(173, 173, 173)},
	{"gray69", rgb(176, 176, 176)},
	{"gray7", rgb(18, 18, 18)},
	{"gray70", rgb(179, 179, 179)},
	{"gray71", rgb(181, 181, 181)},
	{"gray72", rgb(184, 184, 184)},
	{"gray73", rgb(186, 186, 186)},
	{"gray74", rgb(189, 189, 189)},
	{"gray75", rgb(191, 191, 191)},
	{"gray76", rgb(194, 194, 194)},
	{"gray77", rgb(196, 196, 196)},
	{"gray78", rgb(199, 199, 199)},
	{"gray79", rgb(201, 201, 201)},
	{"gray8", rgb(20, 20, 20)},
	{"gray80", rgb(204, 204, 204)},
	{"gray81", rgb(207, 207, 207)},
	{"gray82", rgb(209, 209, 209)},
	{"gray83", rgb(212, 212, 212)},
	{"gray84", rgb(214, 214, 214)},
	{"gray85", rgb(217, 217, 217)},
	{"gray86", rgb(219, 219, 219)},
	{"gray87", rgb(222, 222, 222)},
	{"gray88", rgb(224, 224, 224)},
	{"gray89", rgb(227, 227, 227)},
	{"gray9", rgb(23, 23, 23)},
	{"gray90", rgb(229, 229, 229)},
	{"gray91", rgb(232, 232, 232)},
	{"gray92", rgb(235, 235, 235)},
	{"gray93", rgb(237, 237, 237)},
	{"gray94", rgb(240, 240, 240)},
	{"gray95", rgb(242, 242, 242)},
	{"gray96", rgb(245, 245, 245)},
	{"gray97", rgb(247, 247, 247)},
	{"gray98", rgb(250, 250, 250)},
	{"gray99", rgb(252, 252, 252)},
	{"green", rgb(0, 255, 0)},
	{"greenyellow", rgb(173, 255, 47)},
	{"honeydew", rgb(240, 255, 240)},
	{"hotpink", rgb(255, 105, 180)},
	{"indianred", rgb(107, 57, 57)},
	{"ivory", rgb(255, 255, 240)},
	{"khaki", rgb(179, 179, 126)},
	{"lavender", rgb(230, 230, 250)},
	{"lavenderblush", rgb(255, 240, 245)},
	{"lawngreen", rgb(124, 252, 0)},
	{"lemonchiffon", rgb(255, 250, 205)},
	{"lightblue", rgb(176, 226, 255)},
	{"lightcoral", rgb(240, 128, 128)},
	{"lightcyan", rgb(224, 255, 255)},
	{"lightgoldenrod", rgb(238, 221, 130)},
	{"lightgoldenrodyellow", rgb(250, 250, 210)},
	{"lightgray", rgb(168, 168, 168)},
	{"lightpink", rgb(255, 182, 193)},
	{"lightsalmon", rgb(255, 160, 122)},
	{"lightseagreen", rgb(32, 178, 170)},
	{"lightskyblue", rgb(135, 206, 250)},
	{"lightslateblue", rgb(132, 112, 255)},
	{"lightslategray", rgb(119, 136, 153)},
	{"lightsteelblue", rgb(124, 152, 211)},
	{"lightyellow", rgb(255, 255, 224)},
	{"limegreen", rgb(0, 175, 20)},
	{"linen", rgb(250, 240, 230)},
	{"magenta", rgb(255, 0, 255)},
	{"maroon", rgb(143, 0, 82)},
	{"mediumaquamarine", rgb(0, 147, 143)},
	{"mediumblue", rgb(50, 50, 204)},
	{"mediumforestgreen", rgb(50, 129, 75)},
	{"mediumgoldenrod", rgb(209, 193, 102)},
	{"mediumorchid", rgb(189, 82, 189)},
	{"mediumpurple", rgb(147, 112, 219)},
	{"mediumseagreen", rgb(52, 119, 102)},
	{"mediumslateblue", rgb(106, 106, 141)},
	{"mediumspringgreen", rgb(35, 142, 35)},
	{"mediumturquoise", rgb(0, 210, 210)},
	{"mediumvioletred", rgb(213, 32, 121)},
	{"midnightblue", rgb(47, 47, 100)},
	{"mintcream", rgb(245, 255, 250)},
	{"mistyrose", rgb(255, 228, 225)},
	{"moccasin", rgb(255, 228, 181)},
	{"navajowhite", rgb(255, 222, 173)},
	{"navy", rgb(35, 35, 117)},
	{"navyblue", rgb(35, 35, 117)},
	{"oldlace", rgb(253, 245, 230)},
	{"olivedrab", rgb(107, 142, 35)},
	{"orange", rgb(255, 135, 0)},
	{"orangered", rgb(255, 69, 0)},
	{"orchid", rgb(239, 132, 239)},
	{"palegoldenrod", rgb(238, 232, 170)},
	{"palegreen", rgb(115, 222, 120)},
	{"paleturquoise", rgb(175, 238, 238)},
	{"palevioletred", rgb(219, 112, 147)},
	{"papayawhip", rgb(255, 239, 213)},
	{"peachpuff", rgb(255, 218, 185)},
	{"peru", rgb(205, 133, 63)},
	{"pink", rgb(255, 181, 197)},
	{"plum", rgb(197, 72, 155)},
	{"powderblue", rgb(176, 224, 230)},
	{"purple", rgb(160, 32, 240)},
	{"red", rgb(255, 0, 0)},
	{"rosybrown", rgb(188, 143, 143)},
	{"royalblue", rgb(65, 105, 225)},
	{"saddlebrown", rgb(139, 69, 19)},
	{"salmon", rgb(233, 150, 122)},
	{"sandybrown", rgb(244, 164, 96)},
	{"seagreen", rgb(82, 149, 132)},
	{"seashell", rgb(255, 245, 238)},
	{"sienna", rgb(150, 82, 45)},
	{"silver", rgb(192, 192, 192)},
	{"skyblue", rgb(114, 159, 255)},
	{"slateblue", rgb(126, 136, 171)},
	{"slategray", rgb(112, 128, 144)},
	{"snow", rgb(255, 250, 250)},
	{"springgreen", rgb(65, 172, 65)},
	{"steelblue", rgb(84, 112, 170)},
	{"tan", rgb(222, 184, 135)},
	{"thistle", rgb(216, 191, 216)},
	{"tomato", rgb(255, 99, 71)},
	{"transparent", rgb(0, 0, 1)},
	{"turquoise", rgb(25, 204, 223)},
	{"violet", rgb(156, 62, 206)},
	{"violetred", rgb(243, 62, 150)},
	{"wheat", rgb(245, 222, 179)},
	{"white", rgb(255, 255, 255)},
	{"whitesmoke", rgb(245, 245, 245)},
	{"yellow", rgb(255, 255, 0)},
	{"yellowgreen", rgb(50, 216, 56)},
}
