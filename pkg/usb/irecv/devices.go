package irecv

import (
	"fmt"
	"strings"
)

// Device is one static row of the device database (§4.1), mapping a
// product type / hardware model pair to its chip id, board id and
// marketing name.
type Device struct {
	ProductType   string
	HardwareModel string
	BoardID       uint32
	ChipID        uint32
	DisplayName   string
}

// devices is the static device database, ported from libirecovery's
// irecv_devices table. Exact duplicate rows (same product type, hardware
// model, board id and chip id) are not repeated.
var devices = []Device{
	{ProductType: "iPhone1,1", HardwareModel: "m68ap", BoardID: 0x00, ChipID: 0x8900, DisplayName: "iPhone 2G"},
	{ProductType: "iPhone1,2", HardwareModel: "n82ap", BoardID: 0x04, ChipID: 0x8900, DisplayName: "iPhone 3G"},
	{ProductType: "iPhone2,1", HardwareModel: "n88ap", BoardID: 0x00, ChipID: 0x8920, DisplayName: "iPhone 3Gs"},
	{ProductType: "iPhone3,1", HardwareModel: "n90ap", BoardID: 0x00, ChipID: 0x8930, DisplayName: "iPhone 4 (GSM)"},
	{ProductType: "iPhone3,2", HardwareModel: "n90bap", BoardID: 0x04, ChipID: 0x8930, DisplayName: "iPhone 4 (GSM) R2 2012"},
	{ProductType: "iPhone3,3", HardwareModel: "n92ap", BoardID: 0x06, ChipID: 0x8930, DisplayName: "iPhone 4 (CDMA)"},
	{ProductType: "iPhone4,1", HardwareModel: "n94ap", BoardID: 0x08, ChipID: 0x8940, DisplayName: "iPhone 4s"},
	{ProductType: "iPhone5,1", HardwareModel: "n41ap", BoardID: 0x00, ChipID: 0x8950, DisplayName: "iPhone 5 (GSM)"},
	{ProductType: "iPhone5,2", HardwareModel: "n42ap", BoardID: 0x02, ChipID: 0x8950, DisplayName: "iPhone 5 (Global)"},
	{ProductType: "iPhone5,3", HardwareModel: "n48ap", BoardID: 0x0a, ChipID: 0x8950, DisplayName: "iPhone 5c (GSM)"},
	{ProductType: "iPhone5,4", HardwareModel: "n49ap", BoardID: 0x0e, ChipID: 0x8950, DisplayName: "iPhone 5c (Global)"},
	{ProductType: "iPhone6,1", HardwareModel: "n51ap", BoardID: 0x00, ChipID: 0x8960, DisplayName: "iPhone 5s (GSM)"},
	{ProductType: "iPhone6,2", HardwareModel: "n53ap", BoardID: 0x02, ChipID: 0x8960, DisplayName: "iPhone 5s (Global)"},
	{ProductType: "iPhone7,1", HardwareModel: "n56ap", BoardID: 0x04, ChipID: 0x7000, DisplayName: "iPhone 6 Plus"},
	{ProductType: "iPhone7,2", HardwareModel: "n61ap", BoardID: 0x06, ChipID: 0x7000, DisplayName: "iPhone 6"},
	{ProductType: "iPhone8,1", HardwareModel: "n71ap", BoardID: 0x04, ChipID: 0x8000, DisplayName: "iPhone 6s"},
	{ProductType: "iPhone8,1", HardwareModel: "n71map", BoardID: 0x04, ChipID: 0x8003, DisplayName: "iPhone 6s"},
	{ProductType: "iPhone8,2", HardwareModel: "n66ap", BoardID: 0x06, ChipID: 0x8000, DisplayName: "iPhone 6s Plus"},
	{ProductType: "iPhone8,2", HardwareModel: "n66map", BoardID: 0x06, ChipID: 0x8003, DisplayName: "iPhone 6s Plus"},
	{ProductType: "iPhone8,4", HardwareModel: "n69ap", BoardID: 0x02, ChipID: 0x8003, DisplayName: "iPhone SE (1st gen)"},
	{ProductType: "iPhone8,4", HardwareModel: "n69uap", BoardID: 0x02, ChipID: 0x8000, DisplayName: "iPhone SE (1st gen)"},
	{ProductType: "iPhone9,1", HardwareModel: "d10ap", BoardID: 0x08, ChipID: 0x8010, DisplayName: "iPhone 7 (Global)"},
	{ProductType: "iPhone9,2", HardwareModel: "d11ap", BoardID: 0x0a, ChipID: 0x8010, DisplayName: "iPhone 7 Plus (Global)"},
	{ProductType: "iPhone9,3", HardwareModel: "d101ap", BoardID: 0x0c, ChipID: 0x8010, DisplayName: "iPhone 7 (GSM)"},
	{ProductType: "iPhone9,4", HardwareModel: "d111ap", BoardID: 0x0e, ChipID: 0x8010, DisplayName: "iPhone 7 Plus (GSM)"},
	{ProductType: "iPhone10,1", HardwareModel: "d20ap", BoardID: 0x02, ChipID: 0x8015, DisplayName: "iPhone 8 (Global)"},
	{ProductType: "iPhone10,2", HardwareModel: "d21ap", BoardID: 0x04, ChipID: 0x8015, DisplayName: "iPhone 8 Plus (Global)"},
	{ProductType: "iPhone10,3", HardwareModel: "d22ap", BoardID: 0x06, ChipID: 0x8015, DisplayName: "iPhone X (Global)"},
	{ProductType: "iPhone10,4", HardwareModel: "d201ap", BoardID: 0x0a, ChipID: 0x8015, DisplayName: "iPhone 8 (GSM)"},
	{ProductType: "iPhone10,5", HardwareModel: "d211ap", BoardID: 0x0c, ChipID: 0x8015, DisplayName: "iPhone 8 Plus (GSM)"},
	{ProductType: "iPhone10,6", HardwareModel: "d221ap", BoardID: 0x0e, ChipID: 0x8015, DisplayName: "iPhone X (GSM)"},
	{ProductType: "iPhone11,2", HardwareModel: "d321ap", BoardID: 0x0e, ChipID: 0x8020, DisplayName: "iPhone XS"},
	{ProductType: "iPhone11,4", HardwareModel: "d331ap", BoardID: 0x0a, ChipID: 0x8020, DisplayName: "iPhone XS Max (China)"},
	{ProductType: "iPhone11,6", HardwareModel: "d331pap", BoardID: 0x1a, ChipID: 0x8020, DisplayName: "iPhone XS Max"},
	{ProductType: "iPhone11,8", HardwareModel: "n841ap", BoardID: 0x0c, ChipID: 0x8020, DisplayName: "iPhone XR"},
	{ProductType: "iPhone12,1", HardwareModel: "n104ap", BoardID: 0x04, ChipID: 0x8030, DisplayName: "iPhone 11"},
	{ProductType: "iPhone12,3", HardwareModel: "d421ap", BoardID: 0x06, ChipID: 0x8030, DisplayName: "iPhone 11 Pro"},
	{ProductType: "iPhone12,5", HardwareModel: "d431ap", BoardID: 0x02, ChipID: 0x8030, DisplayName: "iPhone 11 Pro Max"},
	{ProductType: "iPhone12,8", HardwareModel: "d79ap", BoardID: 0x10, ChipID: 0x8030, DisplayName: "iPhone SE (2nd gen)"},
	{ProductType: "iPhone13,1", HardwareModel: "d52gap", BoardID: 0x0A, ChipID: 0x8101, DisplayName: "iPhone 12 mini"},
	{ProductType: "iPhone13,2", HardwareModel: "d53gap", BoardID: 0x0C, ChipID: 0x8101, DisplayName: "iPhone 12"},
	{ProductType: "iPhone13,3", HardwareModel: "d53pap", BoardID: 0x0E, ChipID: 0x8101, DisplayName: "iPhone 12 Pro"},
	{ProductType: "iPhone13,4", HardwareModel: "d54pap", BoardID: 0x08, ChipID: 0x8101, DisplayName: "iPhone 12 Pro Max"},
	{ProductType: "iPhone14,2", HardwareModel: "d63ap", BoardID: 0x0C, ChipID: 0x8110, DisplayName: "iPhone 13 Pro"},
	{ProductType: "iPhone14,3", HardwareModel: "d64ap", BoardID: 0x0E, ChipID: 0x8110, DisplayName: "iPhone 13 Pro Max"},
	{ProductType: "iPhone14,4", HardwareModel: "d16ap", BoardID: 0x08, ChipID: 0x8110, DisplayName: "iPhone 13 mini"},
	{ProductType: "iPhone14,5", HardwareModel: "d17ap", BoardID: 0x0A, ChipID: 0x8110, DisplayName: "iPhone 13"},
	{ProductType: "iPhone14,6", HardwareModel: "d49ap", BoardID: 0x10, ChipID: 0x8110, DisplayName: "iPhone SE (3rd gen)"},
	{ProductType: "iPhone14,7", HardwareModel: "d27ap", BoardID: 0x18, ChipID: 0x8110, DisplayName: "iPhone 14"},
	{ProductType: "iPhone14,8", HardwareModel: "d28ap", BoardID: 0x1A, ChipID: 0x8110, DisplayName: "iPhone 14 Plus"},
	{ProductType: "iPhone15,2", HardwareModel: "d73ap", BoardID: 0x0C, ChipID: 0x8120, DisplayName: "iPhone 14 Pro"},
	{ProductType: "iPhone15,3", HardwareModel: "d74ap", BoardID: 0x0E, ChipID: 0x8120, DisplayName: "iPhone 14 Pro Max"},
	{ProductType: "iPod1,1", HardwareModel: "n45ap", BoardID: 0x02, ChipID: 0x8900, DisplayName: "iPod Touch (1st gen)"},
	{ProductType: "iPod2,1", HardwareModel: "n72ap", BoardID: 0x00, ChipID: 0x8720, DisplayName: "iPod Touch (2nd gen)"},
	{ProductType: "iPod3,1", HardwareModel: "n18ap", BoardID: 0x02, ChipID: 0x8922, DisplayName: "iPod Touch (3rd gen)"},
	{ProductType: "iPod4,1", HardwareModel: "n81ap", BoardID: 0x08, ChipID: 0x8930, DisplayName: "iPod Touch (4th gen)"},
	{ProductType: "iPod5,1", HardwareModel: "n78ap", BoardID: 0x00, ChipID: 0x8942, DisplayName: "iPod Touch (5th gen)"},
	{ProductType: "iPod7,1", HardwareModel: "n102ap", BoardID: 0x10, ChipID: 0x7000, DisplayName: "iPod Touch (6th gen)"},
	{ProductType: "iPod9,1", HardwareModel: "n112ap", BoardID: 0x16, ChipID: 0x8010, DisplayName: "iPod Touch (7th gen)"},
	{ProductType: "iPad1,1", HardwareModel: "k48ap", BoardID: 0x02, ChipID: 0x8930, DisplayName: "iPad"},
	{ProductType: "iPad2,1", HardwareModel: "k93ap", BoardID: 0x04, ChipID: 0x8940, DisplayName: "iPad 2 (WiFi)"},
	{ProductType: "iPad2,2", HardwareModel: "k94ap", BoardID: 0x06, ChipID: 0x8940, DisplayName: "iPad 2 (GSM)"},
	{ProductType: "iPad2,3", HardwareModel: "k95ap", BoardID: 0x02, ChipID: 0x8940, DisplayName: "iPad 2 (CDMA)"},
	{ProductType: "iPad2,4", HardwareModel: "k93aap", BoardID: 0x06, ChipID: 0x8942, DisplayName: "iPad 2 (WiFi) R2 2012"},
	{ProductType: "iPad2,5", HardwareModel: "p105ap", BoardID: 0x0a, ChipID: 0x8942, DisplayName: "iPad mini (WiFi)"},
	{ProductType: "iPad2,6", HardwareModel: "p106ap", BoardID: 0x0c, ChipID: 0x8942, DisplayName: "iPad mini (GSM)"},
	{ProductType: "iPad2,7", HardwareModel: "p107ap", BoardID: 0x0e, ChipID: 0x8942, DisplayName: "iPad mini (Global)"},
	{ProductType: "iPad3,1", HardwareModel: "j1ap", BoardID: 0x00, ChipID: 0x8945, DisplayName: "iPad (3rd gen, WiFi)"},
	{ProductType: "iPad3,2", HardwareModel: "j2ap", BoardID: 0x02, ChipID: 0x8945, DisplayName: "iPad (3rd gen, CDMA)"},
	{ProductType: "iPad3,3", HardwareModel: "j2aap", BoardID: 0x04, ChipID: 0x8945, DisplayName: "iPad (3rd gen, GSM)"},
	{ProductType: "iPad3,4", HardwareModel: "p101ap", BoardID: 0x00, ChipID: 0x8955, DisplayName: "iPad (4th gen, WiFi)"},
	{ProductType: "iPad3,5", HardwareModel: "p102ap", BoardID: 0x02, ChipID: 0x8955, DisplayName: "iPad (4th gen, GSM)"},
	{ProductType: "iPad3,6", HardwareModel: "p103ap", BoardID: 0x04, ChipID: 0x8955, DisplayName: "iPad (4th gen, Global)"},
	{ProductType: "iPad4,1", HardwareModel: "j71ap", BoardID: 0x10, ChipID: 0x8960, DisplayName: "iPad Air (WiFi)"},
	{ProductType: "iPad4,2", HardwareModel: "j72ap", BoardID: 0x12, ChipID: 0x8960, DisplayName: "iPad Air (Cellular)"},
	{ProductType: "iPad4,3", HardwareModel: "j73ap", BoardID: 0x14, ChipID: 0x8960, DisplayName: "iPad Air (China)"},
	{ProductType: "iPad4,4", HardwareModel: "j85ap", BoardID: 0x0a, ChipID: 0x8960, DisplayName: "iPad mini 2 (WiFi)"},
	{ProductType: "iPad4,5", HardwareModel: "j86ap", BoardID: 0x0c, ChipID: 0x8960, DisplayName: "iPad mini 2 (Cellular)"},
	{ProductType: "iPad4,6", HardwareModel: "j87ap", BoardID: 0x0e, ChipID: 0x8960, DisplayName: "iPad mini 2 (China)"},
	{ProductType: "iPad4,7", HardwareModel: "j85map", BoardID: 0x32, ChipID: 0x8960, DisplayName: "iPad mini 3 (WiFi)"},
	{ProductType: "iPad4,8", HardwareModel: "j86map", BoardID: 0x34, ChipID: 0x8960, DisplayName: "iPad mini 3 (Cellular)"},
	{ProductType: "iPad4,9", HardwareModel: "j87map", BoardID: 0x36, ChipID: 0x8960, DisplayName: "iPad mini 3 (China)"},
	{ProductType: "iPad5,1", HardwareModel: "j96ap", BoardID: 0x08, ChipID: 0x7000, DisplayName: "iPad mini 4 (WiFi)"},
	{ProductType: "iPad5,2", HardwareModel: "j97ap", BoardID: 0x0A, ChipID: 0x7000, DisplayName: "iPad mini 4 (Cellular)"},
	{ProductType: "iPad5,3", HardwareModel: "j81ap", BoardID: 0x06, ChipID: 0x7001, DisplayName: "iPad Air 2 (WiFi)"},
	{ProductType: "iPad5,4", HardwareModel: "j82ap", BoardID: 0x02, ChipID: 0x7001, DisplayName: "iPad Air 2 (Cellular)"},
	{ProductType: "iPad6,3", HardwareModel: "j127ap", BoardID: 0x08, ChipID: 0x8001, DisplayName: "iPad Pro 9.7-inch (WiFi)"},
	{ProductType: "iPad6,4", HardwareModel: "j128ap", BoardID: 0x0a, ChipID: 0x8001, DisplayName: "iPad Pro 9.7-inch (Cellular)"},
	{ProductType: "iPad6,7", HardwareModel: "j98aap", BoardID: 0x10, ChipID: 0x8001, DisplayName: "iPad Pro 12.9-inch (1st gen, WiFi)"},
	{ProductType: "iPad6,8", HardwareModel: "j99aap", BoardID: 0x12, ChipID: 0x8001, DisplayName: "iPad Pro 12.9-inch (1st gen, Cellular)"},
	{ProductType: "iPad6,11", HardwareModel: "j71sap", BoardID: 0x10, ChipID: 0x8000, DisplayName: "iPad (5th gen, WiFi)"},
	{ProductType: "iPad6,11", HardwareModel: "j71tap", BoardID: 0x10, ChipID: 0x8003, DisplayName: "iPad (5th gen, WiFi)"},
	{ProductType: "iPad6,12", HardwareModel: "j72sap", BoardID: 0x12, ChipID: 0x8000, DisplayName: "iPad (5th gen, Cellular)"},
	{ProductType: "iPad6,12", HardwareModel: "j72tap", BoardID: 0x12, ChipID: 0x8003, DisplayName: "iPad (5th gen, Cellular)"},
	{ProductType: "iPad7,1", HardwareModel: "j120ap", BoardID: 0x0C, ChipID: 0x8011, DisplayName: "iPad Pro 12.9-inch (2nd gen, WiFi)"},
	{ProductType: "iPad7,2", HardwareModel: "j121ap", BoardID: 0x0E, ChipID: 0x8011, DisplayName: "iPad Pro 12.9-inch (2nd gen, Cellular)"},
	{ProductType: "iPad7,3", HardwareModel: "j207ap", BoardID: 0x04, ChipID: 0x8011, DisplayName: "iPad Pro 10.5-inch (WiFi)"},
	{ProductType: "iPad7,4", HardwareModel: "j208ap", BoardID: 0x06, ChipID: 0x8011, DisplayName: "iPad Pro 10.5-inch (Cellular)"},
	{ProductType: "iPad7,5", HardwareModel: "j71bap", BoardID: 0x18, ChipID: 0x8010, DisplayName: "iPad (6th gen, WiFi)"},
	{ProductType: "iPad7,6", HardwareModel: "j72bap", BoardID: 0x1A, ChipID: 0x8010, DisplayName: "iPad (6th gen, Cellular)"},
	{ProductType: "iPad7,11", HardwareModel: "j171ap", BoardID: 0x1C, ChipID: 0x8010, DisplayName: "iPad (7th gen, WiFi)"},
	{ProductType: "iPad7,12", HardwareModel: "j172ap", BoardID: 0x1E, ChipID: 0x8010, DisplayName: "iPad (7th gen, Cellular)"},
	{ProductType: "iPad8,1", HardwareModel: "j317ap", BoardID: 0x0C, ChipID: 0x8027, DisplayName: "iPad Pro 11-inch (1st gen, WiFi)"},
	{ProductType: "iPad8,2", HardwareModel: "j317xap", BoardID: 0x1C, ChipID: 0x8027, DisplayName: "iPad Pro 11-inch (1st gen, WiFi, 1TB)"},
	{ProductType: "iPad8,3", HardwareModel: "j318ap", BoardID: 0x0E, ChipID: 0x8027, DisplayName: "iPad Pro 11-inch (1st gen, Cellular)"},
	{ProductType: "iPad8,4", HardwareModel: "j318xap", BoardID: 0x1E, ChipID: 0x8027, DisplayName: "iPad Pro 11-inch (1st gen, Cellular, 1TB)"},
	{ProductType: "iPad8,5", HardwareModel: "j320ap", BoardID: 0x08, ChipID: 0x8027, DisplayName: "iPad Pro 12.9-inch (3rd gen, WiFi)"},
	{ProductType: "iPad8,6", HardwareModel: "j320xap", BoardID: 0x18, ChipID: 0x8027, DisplayName: "iPad Pro 12.9-inch (3rd gen, WiFi, 1TB)"},
	{ProductType: "iPad8,7", HardwareModel: "j321ap", BoardID: 0x0A, ChipID: 0x8027, DisplayName: "iPad Pro 12.9-inch (3rd gen, Cellular)"},
	{ProductType: "iPad8,8", HardwareModel: "j321xap", BoardID: 0x1A, ChipID: 0x8027, DisplayName: "iPad Pro 12.9-inch (3rd gen, Cellular, 1TB)"},
	{ProductType: "iPad8,9", HardwareModel: "j417ap", BoardID: 0x3C, ChipID: 0x8027, DisplayName: "iPad Pro 11-inch (2nd gen, WiFi)"},
	{ProductType: "iPad8,10", HardwareModel: "j418ap", BoardID: 0x3E, ChipID: 0x8027, DisplayName: "iPad Pro 11-inch (2nd gen, Cellular)"},
	{ProductType: "iPad8,11", HardwareModel: "j420ap", BoardID: 0x38, ChipID: 0x8027, DisplayName: "iPad Pro 12.9-inch (4th gen, WiFi)"},
	{ProductType: "iPad8,12", HardwareModel: "j421ap", BoardID: 0x3A, ChipID: 0x8027, DisplayName: "iPad Pro 12.9-inch (4th gen, Cellular)"},
	{ProductType: "iPad11,1", HardwareModel: "j210ap", BoardID: 0x14, ChipID: 0x8020, DisplayName: "iPad mini (5th gen, WiFi)"},
	{ProductType: "iPad11,2", HardwareModel: "j211ap", BoardID: 0x16, ChipID: 0x8020, DisplayName: "iPad mini (5th gen, Cellular)"},
	{ProductType: "iPad11,3", HardwareModel: "j217ap", BoardID: 0x1C, ChipID: 0x8020, DisplayName: "iPad Air (3rd gen, WiFi)"},
	{ProductType: "iPad11,4", HardwareModel: "j218ap", BoardID: 0x1E, ChipID: 0x8020, DisplayName: "iPad Air (3rd gen, Celluar)"},
	{ProductType: "iPad11,6", HardwareModel: "j171aap", BoardID: 0x24, ChipID: 0x8020, DisplayName: "iPad (8th gen, WiFi)"},
	{ProductType: "iPad11,7", HardwareModel: "j172aap", BoardID: 0x26, ChipID: 0x8020, DisplayName: "iPad (8th gen, Celluar)"},
	{ProductType: "iPad12,1", HardwareModel: "j181ap", BoardID: 0x18, ChipID: 0x8030, DisplayName: "iPad (9th gen, WiFi)"},
	{ProductType: "iPad12,2", HardwareModel: "j182ap", BoardID: 0x1A, ChipID: 0x8030, DisplayName: "iPad (9th gen, Cellular)"},
	{ProductType: "iPad13,1", HardwareModel: "j307ap", BoardID: 0x04, ChipID: 0x8101, DisplayName: "iPad Air (4th gen, WiFi)"},
	{ProductType: "iPad13,2", HardwareModel: "j308ap", BoardID: 0x06, ChipID: 0x8101, DisplayName: "iPad Air (4th gen, Celluar)"},
	{ProductType: "iPad13,4", HardwareModel: "j517ap", BoardID: 0x08, ChipID: 0x8103, DisplayName: "iPad Pro 11-inch (3rd gen, WiFi)"},
	{ProductType: "iPad13,5", HardwareModel: "j517xap", BoardID: 0x0A, ChipID: 0x8103, DisplayName: "iPad Pro 11-inch (3rd gen, WiFi, 2TB)"},
	{ProductType: "iPad13,6", HardwareModel: "j518ap", BoardID: 0x0C, ChipID: 0x8103, DisplayName: "iPad Pro 11-inch (3rd gen, Cellular)"},
	{ProductType: "iPad13,7", HardwareModel: "j518xap", BoardID: 0x0E, ChipID: 0x8103, DisplayName: "iPad Pro 11-inch (3rd gen, Celluar, 2TB)"},
	{ProductType: "iPad13,8", HardwareModel: "j522ap", BoardID: 0x18, ChipID: 0x8103, DisplayName: "iPad Pro 12.9-inch (5th gen, WiFi)"},
	{ProductType: "iPad13,9", HardwareModel: "j522xap", BoardID: 0x1A, ChipID: 0x8103, DisplayName: "iPad Pro 12.9-inch (5th gen, WiFi, 2TB)"},
	{ProductType: "iPad13,10", HardwareModel: "j523ap", BoardID: 0x1C, ChipID: 0x8103, DisplayName: "iPad Pro 12.9-inch (5th gen, Celluar)"},
	{ProductType: "iPad13,11", HardwareModel: "j523xap", BoardID: 0x1E, ChipID: 0x8103, DisplayName: "iPad Pro 12.9-inch (5th gen, Celluar, 2TB)"},
	{ProductType: "iPad13,16", HardwareModel: "j407ap", BoardID: 0x10, ChipID: 0x8103, DisplayName: "iPad Air (5th gen, WiFi)"},
	{ProductType: "iPad13,17", HardwareModel: "j408ap", BoardID: 0x12, ChipID: 0x8103, DisplayName: "iPad Air (5th gen, Celluar)"},
	{ProductType: "iPad14,1", HardwareModel: "j310ap", BoardID: 0x04, ChipID: 0x8110, DisplayName: "iPad mini (6th gen, WiFi)"},
	{ProductType: "iPad14,2", HardwareModel: "j311ap", BoardID: 0x06, ChipID: 0x8110, DisplayName: "iPad mini (6th gen, Cellular)"},
	{ProductType: "AppleTV2,1", HardwareModel: "k66ap", BoardID: 0x10, ChipID: 0x8930, DisplayName: "Apple TV 2"},
	{ProductType: "AppleTV3,1", HardwareModel: "j33ap", BoardID: 0x08, ChipID: 0x8942, DisplayName: "Apple TV 3"},
	{ProductType: "AppleTV3,2", HardwareModel: "j33iap", BoardID: 0x00, ChipID: 0x8947, DisplayName: "Apple TV 3 (2013)"},
	{ProductType: "AppleTV5,3", HardwareModel: "j42dap", BoardID: 0x34, ChipID: 0x7000, DisplayName: "Apple TV 4"},
	{ProductType: "AppleTV6,2", HardwareModel: "j105aap", BoardID: 0x02, ChipID: 0x8011, DisplayName: "Apple TV 4K"},
	{ProductType: "AppleTV11,1", HardwareModel: "j305ap", BoardID: 0x08, ChipID: 0x8020, DisplayName: "Apple TV 4K (2nd gen)"},
	{ProductType: "AudioAccessory1,1", HardwareModel: "b238aap", BoardID: 0x38, ChipID: 0x7000, DisplayName: "HomePod"},
	{ProductType: "AudioAccessory1,2", HardwareModel: "b238ap", BoardID: 0x1A, ChipID: 0x7000, DisplayName: "HomePod"},
	{ProductType: "AudioAccessory5,1", HardwareModel: "b520ap", BoardID: 0x22, ChipID: 0x8006, DisplayName: "HomePod mini"},
	{ProductType: "Watch1,1", HardwareModel: "n27aap", BoardID: 0x02, ChipID: 0x7002, DisplayName: "Apple Watch 38mm (1st gen)"},
	{ProductType: "Watch1,2", HardwareModel: "n28aap", BoardID: 0x04, ChipID: 0x7002, DisplayName: "Apple Watch 42mm (1st gen)"},
	{ProductType: "Watch2,6", HardwareModel: "n27dap", BoardID: 0x02, ChipID: 0x8002, DisplayName: "Apple Watch Series 1 (38mm)"},
	{ProductType: "Watch2,7", HardwareModel: "n28dap", BoardID: 0x04, ChipID: 0x8002, DisplayName: "Apple Watch Series 1 (42mm)"},
	{ProductType: "Watch2,3", HardwareModel: "n74ap", BoardID: 0x0C, ChipID: 0x8002, DisplayName: "Apple Watch Series 2 (38mm)"},
	{ProductType: "Watch2,4", HardwareModel: "n75ap", BoardID: 0x0E, ChipID: 0x8002, DisplayName: "Apple Watch Series 2 (42mm)"},
	{ProductType: "Watch3,1", HardwareModel: "n111sap", BoardID: 0x1C, ChipID: 0x8004, DisplayName: "Apple Watch Series 3 (38mm Cellular)"},
	{ProductType: "Watch3,2", HardwareModel: "n111bap", BoardID: 0x1E, ChipID: 0x8004, DisplayName: "Apple Watch Series 3 (42mm Cellular)"},
	{ProductType: "Watch3,3", HardwareModel: "n121sap", BoardID: 0x18, ChipID: 0x8004, DisplayName: "Apple Watch Series 3 (38mm)"},
	{ProductType: "Watch3,4", HardwareModel: "n121bap", BoardID: 0x1A, ChipID: 0x8004, DisplayName: "Apple Watch Series 3 (42mm)"},
	{ProductType: "Watch4,1", HardwareModel: "n131sap", BoardID: 0x08, ChipID: 0x8006, DisplayName: "Apple Watch Series 4 (40mm)"},
	{ProductType: "Watch4,2", HardwareModel: "n131bap", BoardID: 0x0A, ChipID: 0x8006, DisplayName: "Apple Watch Series 4 (44mm)"},
	{ProductType: "Watch4,3", HardwareModel: "n141sap", BoardID: 0x0C, ChipID: 0x8006, DisplayName: "Apple Watch Series 4 (40mm Cellular)"},
	{ProductType: "Watch4,4", HardwareModel: "n141bap", BoardID: 0x0E, ChipID: 0x8006, DisplayName: "Apple Watch Series 4 (44mm Cellular)"},
	{ProductType: "Watch5,1", HardwareModel: "n144sap", BoardID: 0x10, ChipID: 0x8006, DisplayName: "Apple Watch Series 5 (40mm)"},
	{ProductType: "Watch5,2", HardwareModel: "n144bap", BoardID: 0x12, ChipID: 0x8006, DisplayName: "Apple Watch Series 5 (44mm)"},
	{ProductType: "Watch5,3", HardwareModel: "n146sap", BoardID: 0x14, ChipID: 0x8006, DisplayName: "Apple Watch Series 5 (40mm Cellular)"},
	{ProductType: "Watch5,4", HardwareModel: "n146bap", BoardID: 0x16, ChipID: 0x8006, DisplayName: "Apple Watch Series 5 (44mm Cellular)"},
	{ProductType: "Watch5,9", HardwareModel: "n140sap", BoardID: 0x28, ChipID: 0x8006, DisplayName: "Apple Watch SE (40mm)"},
	{ProductType: "Watch5,10", HardwareModel: "n140bap", BoardID: 0x2A, ChipID: 0x8006, DisplayName: "Apple Watch SE (44mm)"},
	{ProductType: "Watch5,11", HardwareModel: "n142sap", BoardID: 0x2C, ChipID: 0x8006, DisplayName: "Apple Watch SE (40mm Cellular)"},
	{ProductType: "Watch5,12", HardwareModel: "n142bap", BoardID: 0x2E, ChipID: 0x8006, DisplayName: "Apple Watch SE (44mm Cellular)"},
	{ProductType: "Watch6,1", HardwareModel: "n157sap", BoardID: 0x08, ChipID: 0x8301, DisplayName: "Apple Watch Series 6 (40mm)"},
	{ProductType: "Watch6,2", HardwareModel: "n157bap", BoardID: 0x0A, ChipID: 0x8301, DisplayName: "Apple Watch Series 6 (44mm)"},
	{ProductType: "Watch6,3", HardwareModel: "n158sap", BoardID: 0x0C, ChipID: 0x8301, DisplayName: "Apple Watch Series 6 (40mm Cellular)"},
	{ProductType: "Watch6,4", HardwareModel: "n158bap", BoardID: 0x0E, ChipID: 0x8301, DisplayName: "Apple Watch Series 6 (44mm Cellular)"},
	{ProductType: "Watch6,6", HardwareModel: "n187sap", BoardID: 0x10, ChipID: 0x8301, DisplayName: "Apple Watch Series 7 (41mm)"},
	{ProductType: "Watch6,7", HardwareModel: "n187bap", BoardID: 0x12, ChipID: 0x8301, DisplayName: "Apple Watch Series 7 (45mm)"},
	{ProductType: "Watch6,8", HardwareModel: "n188sap", BoardID: 0x14, ChipID: 0x8301, DisplayName: "Apple Watch Series 7 (41mm Cellular)"},
	{ProductType: "Watch6,9", HardwareModel: "n188bap", BoardID: 0x16, ChipID: 0x8301, DisplayName: "Apple Watch Series 7 (45mm Cellular)"},
	{ProductType: "Watch6,10", HardwareModel: "n143sap", BoardID: 0x28, ChipID: 0x8301, DisplayName: "Apple Watch SE 2 (40mm)"},
	{ProductType: "Watch6,11", HardwareModel: "n143bap", BoardID: 0x2A, ChipID: 0x8301, DisplayName: "Apple Watch SE 2 (44mm)"},
	{ProductType: "Watch6,12", HardwareModel: "n149sap", BoardID: 0x2C, ChipID: 0x8301, DisplayName: "Apple Watch SE 2 (40mm Cellular)"},
	{ProductType: "Watch6,13", HardwareModel: "n149bap", BoardID: 0x2E, ChipID: 0x8301, DisplayName: "Apple Watch SE 2 (44mm Cellular)"},
	{ProductType: "Watch6,14", HardwareModel: "n197sap", BoardID: 0x30, ChipID: 0x8301, DisplayName: "Apple Watch Series 8 (41mm)"},
	{ProductType: "Watch6,15", HardwareModel: "n197bap", BoardID: 0x32, ChipID: 0x8301, DisplayName: "Apple Watch Series 8 (45mm)"},
	{ProductType: "Watch6,16", HardwareModel: "n198sap", BoardID: 0x34, ChipID: 0x8301, DisplayName: "Apple Watch Series 8 (41mm Cellular)"},
	{ProductType: "Watch6,17", HardwareModel: "n198bap", BoardID: 0x36, ChipID: 0x8301, DisplayName: "Apple Watch Series 8 (45mm Cellular)"},
	{ProductType: "Watch6,18", HardwareModel: "n199ap", BoardID: 0x26, ChipID: 0x8301, DisplayName: "Apple Watch Ultra"},
	{ProductType: "ADP3,2", HardwareModel: "j273aap", BoardID: 0x42, ChipID: 0x8027, DisplayName: "Developer Transition Kit (2020)"},
	{ProductType: "Macmini9,1", HardwareModel: "j274ap", BoardID: 0x22, ChipID: 0x8103, DisplayName: "Mac mini (M1, 2020)"},
	{ProductType: "MacBookPro17,1", HardwareModel: "j293ap", BoardID: 0x24, ChipID: 0x8103, DisplayName: "MacBook Pro (M1, 13-inch, 2020)"},
	{ProductType: "MacBookPro18,1", HardwareModel: "j316sap", BoardID: 0x0A, ChipID: 0x6000, DisplayName: "MacBook Pro (M1 Pro, 16-inch, 2021)"},
	{ProductType: "MacBookPro18,2", HardwareModel: "j316cap", BoardID: 0x0A, ChipID: 0x6001, DisplayName: "MacBook Pro (M1 Max, 16-inch, 2021)"},
	{ProductType: "MacBookPro18,3", HardwareModel: "j314sap", BoardID: 0x08, ChipID: 0x6000, DisplayName: "MacBook Pro (M1 Pro, 14-inch, 2021)"},
	{ProductType: "MacBookPro18,4", HardwareModel: "j314cap", BoardID: 0x08, ChipID: 0x6001, DisplayName: "MacBook Pro (M1 Max, 14-inch, 2021)"},
	{ProductType: "MacBookAir10,1", HardwareModel: "j313ap", BoardID: 0x26, ChipID: 0x8103, DisplayName: "MacBook Air (M1, 2020)"},
	{ProductType: "iMac21,1", HardwareModel: "j456ap", BoardID: 0x28, ChipID: 0x8103, DisplayName: "iMac 24-inch (M1, Two Ports, 2021)"},
	{ProductType: "iMac21,2", HardwareModel: "j457ap", BoardID: 0x2A, ChipID: 0x8103, DisplayName: "iMac 24-inch (M1, Four Ports, 2021)"},
	{ProductType: "Mac13,1", HardwareModel: "j375cap", BoardID: 0x04, ChipID: 0x6001, DisplayName: "Mac Studio (M1 Max, 2022)"},
	{ProductType: "Mac13,2", HardwareModel: "j375dap", BoardID: 0x0C, ChipID: 0x6002, DisplayName: "Mac Studio (M1 Ultra, 2022)"},
	{ProductType: "Mac14,2", HardwareModel: "j413ap", BoardID: 0x28, ChipID: 0x8112, DisplayName: "MacBook Air (M2, 2022)"},
	{ProductType: "Mac14,7", HardwareModel: "j493ap", BoardID: 0x2A, ChipID: 0x8112, DisplayName: "MacBook Pro (M2, 13-inch, 2022)"},
	{ProductType: "VirtualMac2,1", HardwareModel: "vma2macosap", BoardID: 0x20, ChipID: 0xFE00, DisplayName: "Apple Virtual Machine 1"},
	{ProductType: "iBridge2,1", HardwareModel: "j137ap", BoardID: 0x0A, ChipID: 0x8012, DisplayName: "Apple T2 iMacPro1,1 (j137)"},
	{ProductType: "iBridge2,3", HardwareModel: "j680ap", BoardID: 0x0B, ChipID: 0x8012, DisplayName: "Apple T2 MacBookPro15,1 (j680)"},
	{ProductType: "iBridge2,4", HardwareModel: "j132ap", BoardID: 0x0C, ChipID: 0x8012, DisplayName: "Apple T2 MacBookPro15,2 (j132)"},
	{ProductType: "iBridge2,5", HardwareModel: "j174ap", BoardID: 0x0E, ChipID: 0x8012, DisplayName: "Apple T2 Macmini8,1 (j174)"},
	{ProductType: "iBridge2,6", HardwareModel: "j160ap", BoardID: 0x0F, ChipID: 0x8012, DisplayName: "Apple T2 MacPro7,1 (j160)"},
	{ProductType: "iBridge2,7", HardwareModel: "j780ap", BoardID: 0x07, ChipID: 0x8012, DisplayName: "Apple T2 MacBookPro15,3 (j780)"},
	{ProductType: "iBridge2,8", HardwareModel: "j140kap", BoardID: 0x17, ChipID: 0x8012, DisplayName: "Apple T2 MacBookAir8,1 (j140k)"},
	{ProductType: "iBridge2,10", HardwareModel: "j213ap", BoardID: 0x18, ChipID: 0x8012, DisplayName: "Apple T2 MacBookPro15,4 (j213)"},
	{ProductType: "iBridge2,12", HardwareModel: "j140aap", BoardID: 0x37, ChipID: 0x8012, DisplayName: "Apple T2 MacBookAir8,2 (j140a)"},
	{ProductType: "iBridge2,14", HardwareModel: "j152fap", BoardID: 0x3A, ChipID: 0x8012, DisplayName: "Apple T2 MacBookPro16,1 (j152f)"},
	{ProductType: "iBridge2,15", HardwareModel: "j230kap", BoardID: 0x3F, ChipID: 0x8012, DisplayName: "Apple T2 MacBookAir9,1 (j230k)"},
	{ProductType: "iBridge2,16", HardwareModel: "j214kap", BoardID: 0x3E, ChipID: 0x8012, DisplayName: "Apple T2 MacBookPro16,2 (j214k)"},
	{ProductType: "iBridge2,19", HardwareModel: "j185ap", BoardID: 0x22, ChipID: 0x8012, DisplayName: "Apple T2 iMac20,1 (j185)"},
	{ProductType: "iBridge2,20", HardwareModel: "j185fap", BoardID: 0x23, ChipID: 0x8012, DisplayName: "Apple T2 iMac20,2 (j185f)"},
	{ProductType: "iBridge2,21", HardwareModel: "j223ap", BoardID: 0x3B, ChipID: 0x8012, DisplayName: "Apple T2 MacBookPro16,3 (j223)"},
	{ProductType: "iBridge2,22", HardwareModel: "j215ap", BoardID: 0x38, ChipID: 0x8012, DisplayName: "Apple T2 MacBookPro16,4 (j215)"},
	{ProductType: "AppleDisplay2,1", HardwareModel: "j327ap", BoardID: 0x22, ChipID: 0x8030, DisplayName: "Studio Display"},
}

// String renders d in the device database's dump format (§6):
// "product_type hardware_model 0x%02x 0x%04x display_name".
func (d Device) String() string {
	return fmt.Sprintf("%s %s 0x%02x 0x%04x %s", d.ProductType, d.HardwareModel, d.BoardID, d.ChipID, d.DisplayName)
}

// AllDevices returns the full static device database, for tooling that
// dumps it (§6).
func AllDevices() []Device {
	return devices
}

// LookupByProductType returns the Device whose ProductType exactly matches
// productType, and false if none does.
func LookupByProductType(productType string) (Device, bool) {
	for _, d := range devices {
		if d.ProductType == productType {
			return d, true
		}
	}
	return Device{}, false
}

// LookupByHardwareModel returns the Device whose HardwareModel matches
// model, case-insensitively, and false if none does.
func LookupByHardwareModel(model string) (Device, bool) {
	for _, d := range devices {
		if strings.EqualFold(d.HardwareModel, model) {
			return d, true
		}
	}
	return Device{}, false
}

// LookupByClient returns the Device matching the given chip id and board
// id, first match wins. When mode is ModePortDFU (or ModeKIS, which shares
// the same product id), cpid/bdid have been repacked into a single 32-bit
// field by the bootrom and must be unpacked before matching: the real chip
// id occupies bits 16-31 and the real board id occupies bits 8-15 (e.g.
// a raw value of 0x15060301 unpacks to chip id 0x1506, board id 0x03;
// see DESIGN.md for the worked example this shift is based on).
func LookupByClient(cpid, bdid uint32, mode Mode) (Device, bool) {
	if mode == ModePortDFU || mode == ModeKIS {
		cpid, bdid = (bdid>>16)&0xFFFF, (bdid>>8)&0xFF
	}
	for _, d := range devices {
		if d.ChipID == cpid && d.BoardID == bdid {
			return d, true
		}
	}
	return Device{}, false
}
