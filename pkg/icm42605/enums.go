package icm42605

import "github.com/mbalug7/go-icm42605/pkg/regs"

// Enumeration constants carry the bit pattern of the field they belong to.
// Values that only match a catch-all variant read back as regs.CatchAllValue.

// FIFO_CONFIG

type FifoMode uint8

const (
	FIFO_BYPASS FifoMode = iota
	FIFO_STREAM
	FIFO_STOP_ON_FULL
	FIFO_MODE_RESERVED
)

var fifoModeEnum = regs.Sequential("FifoMode", "Bypass", "Stream", "StopOnFull", "Reserved")

func (v FifoMode) String() string { return fifoModeEnum.NameOf(uint8(v)) }

// APEX_DATA3

type ActivityClass uint8

const (
	ACTIVITY_UNKNOWN ActivityClass = iota
	ACTIVITY_WALK
	ACTIVITY_RUN
	ACTIVITY_RESERVED
)

var activityClassEnum = regs.Sequential("ActivityClass", "Unknown", "Walk", "Run", "Reserved")

func (v ActivityClass) String() string { return activityClassEnum.NameOf(uint8(v)) }

// APEX_DATA4

type TapNum uint8

const (
	TAP_NONE TapNum = iota
	TAP_SINGLE
	TAP_DOUBLE
	TAP_NUM_RESERVED
)

var tapNumEnum = regs.Sequential("TapNum", "NoTap", "Single", "Double", "Reserved")

func (v TapNum) String() string { return tapNumEnum.NameOf(uint8(v)) }

type Axis uint8

const (
	AXIS_X Axis = iota
	AXIS_Y
	AXIS_Z
	AXIS_RESERVED
)

var axisEnum = regs.Sequential("Axis", "X", "Y", "Z", "Reserved")

func (v Axis) String() string { return axisEnum.NameOf(uint8(v)) }

type Polarity uint8

const (
	POLARITY_POSITIVE Polarity = iota
	POLARITY_NEGATIVE
)

var polarityEnum = regs.Sequential("Polarity", "Positive", "Negative")

func (v Polarity) String() string { return polarityEnum.NameOf(uint8(v)) }

// INTF_CONFIG0

type FifoCountRec uint8

const (
	FIFO_COUNT_BYTES FifoCountRec = iota
	FIFO_COUNT_RECORDS
)

var fifoCountRecEnum = regs.Sequential("FifoCountRec", "Bytes", "Records")

func (v FifoCountRec) String() string { return fifoCountRecEnum.NameOf(uint8(v)) }

type Endian uint8

const (
	ENDIAN_LITTLE Endian = iota
	ENDIAN_BIG
)

var endianEnum = regs.Sequential("Endian", "LittleEndian", "BigEndian")

func (v Endian) String() string { return endianEnum.NameOf(uint8(v)) }

type UiSifsCfg uint8

const (
	UI_SIFS_DISABLE_SPI UiSifsCfg = 2
	UI_SIFS_DISABLE_I2C UiSifsCfg = 3
	UI_SIFS_RESERVED    UiSifsCfg = regs.CatchAllValue
)

var uiSifsCfgEnum = regs.NewEnum("UiSifsCfg",
	regs.Other("Reserved"),
	regs.V("DisableSpi", 2),
	regs.V("DisableI2c", 3),
)

func (v UiSifsCfg) String() string { return uiSifsCfgEnum.NameOf(uint8(v)) }

// INTF_CONFIG1

type AccelLpClkSel uint8

const (
	ACCEL_LP_CLK_WAKE_UP AccelLpClkSel = iota
	ACCEL_LP_CLK_RC
)

var accelLpClkSelEnum = regs.Sequential("AccelLpClkSel", "WakeUp", "Rc")

func (v AccelLpClkSel) String() string { return accelLpClkSelEnum.NameOf(uint8(v)) }

type ClkSel uint8

const (
	CLK_INTERNAL_RC ClkSel = iota
	CLK_PLL_OR_RC
	CLK_RESERVED
	CLK_DISABLE
)

var clkSelEnum = regs.Sequential("ClkSel", "InternalRc", "PllOrRc", "Reserved", "Disable")

func (v ClkSel) String() string { return clkSelEnum.NameOf(uint8(v)) }

// PWR_MGMT0

type GyroMode uint8

const (
	GYRO_OFF GyroMode = iota
	GYRO_STANDBY
	GYRO_MODE_RESERVED
	GYRO_LOW_NOISE
)

var gyroModeEnum = regs.Sequential("GyroMode", "Off", "Standby", "Reserved", "LowNoise")

func (v GyroMode) String() string { return gyroModeEnum.NameOf(uint8(v)) }

type AccelMode uint8

const (
	ACCEL_OFF AccelMode = iota
	ACCEL_MODE_RESERVED
	ACCEL_LOW_POWER
	ACCEL_LOW_NOISE
)

var accelModeEnum = regs.Sequential("AccelMode", "Off", "Reserved", "LowPower", "LowNoise")

func (v AccelMode) String() string { return accelModeEnum.NameOf(uint8(v)) }

// GYRO_CONFIG0, ACCEL_CONFIG0

type GyroFullScale uint8

const (
	GYRO_FS_2000_DPS GyroFullScale = iota
	GYRO_FS_1000_DPS
	GYRO_FS_500_DPS
	GYRO_FS_250_DPS
	GYRO_FS_125_DPS
	GYRO_FS_62_5_DPS
	GYRO_FS_31_25_DPS
	GYRO_FS_15_625_DPS
)

var gyroFullScaleEnum = regs.Sequential("GyroFullScale",
	"DegreesPerSec2000",
	"DegreesPerSec1000",
	"DegreesPerSec500",
	"DegreesPerSec250",
	"DegreesPerSec125",
	"DegreesPerSec62x5",
	"DegreesPerSec31x25",
	"DegreesPerSec15x625",
)

func (v GyroFullScale) String() string { return gyroFullScaleEnum.NameOf(uint8(v)) }

// DegreesPerSecond returns the full scale range.
func (v GyroFullScale) DegreesPerSecond() float64 {
	if v > GYRO_FS_15_625_DPS {
		return 0
	}
	return 2000 / float64(uint(1)<<uint(v))
}

type DataRate uint8

const (
	ODR_8000_HZ   DataRate = 3
	ODR_4000_HZ   DataRate = 4
	ODR_2000_HZ   DataRate = 5
	ODR_1000_HZ   DataRate = 6
	ODR_200_HZ    DataRate = 7
	ODR_100_HZ    DataRate = 8
	ODR_50_HZ     DataRate = 9
	ODR_25_HZ     DataRate = 10
	ODR_12_5_HZ   DataRate = 11
	ODR_6_25_HZ   DataRate = 12
	ODR_3_125_HZ  DataRate = 13
	ODR_1_5625_HZ DataRate = 14
	ODR_500_HZ    DataRate = 15
	ODR_RESERVED  DataRate = regs.CatchAllValue
)

var dataRateEnum = regs.NewEnum("DataRate",
	regs.Other("Reserved"),
	regs.V("Hz8000", 3),
	regs.V("Hz4000", 4),
	regs.V("Hz2000", 5),
	regs.V("Hz1000", 6),
	regs.V("Hz200", 7),
	regs.V("Hz100", 8),
	regs.V("Hz50", 9),
	regs.V("Hz25", 10),
	regs.V("Hz12x5", 11),
	regs.V("Hz6x25", 12),
	regs.V("Hz3x125", 13),
	regs.V("Hz1x15625", 14),
	regs.V("Hz500", 15),
)

func (v DataRate) String() string { return dataRateEnum.NameOf(uint8(v)) }

var dataRateHz = map[DataRate]float64{
	ODR_8000_HZ:   8000,
	ODR_4000_HZ:   4000,
	ODR_2000_HZ:   2000,
	ODR_1000_HZ:   1000,
	ODR_200_HZ:    200,
	ODR_100_HZ:    100,
	ODR_50_HZ:     50,
	ODR_25_HZ:     25,
	ODR_12_5_HZ:   12.5,
	ODR_6_25_HZ:   6.25,
	ODR_3_125_HZ:  3.125,
	ODR_1_5625_HZ: 1.5625,
	ODR_500_HZ:    500,
}

// Hz returns the output data rate, or 0 for a reserved setting.
func (v DataRate) Hz() float64 {
	return dataRateHz[v]
}

type AccelFullScale uint8

const (
	ACCEL_FS_16G AccelFullScale = iota
	ACCEL_FS_8G
	ACCEL_FS_4G
	ACCEL_FS_2G
	ACCEL_FS_RESERVED AccelFullScale = regs.CatchAllValue
)

var accelFullScaleEnum = regs.NewEnum("AccelFullScale",
	regs.V("Max16G", 0),
	regs.V("Max8G", 1),
	regs.V("Max4G", 2),
	regs.V("Max2G", 3),
	regs.Other("Reserved"),
)

func (v AccelFullScale) String() string { return accelFullScaleEnum.NameOf(uint8(v)) }

// G returns the full scale range in g, or 0 for a reserved setting.
func (v AccelFullScale) G() float64 {
	if v > ACCEL_FS_2G {
		return 0
	}
	return 16 / float64(uint(1)<<uint(v))
}

// GYRO_CONFIG1, ACCEL_CONFIG1

type LowPassFilterLatency uint8

const (
	LPF_LATENCY_125_US LowPassFilterLatency = iota
	LPF_LATENCY_1_MS
	LPF_LATENCY_2_MS
	LPF_LATENCY_4_MS
	LPF_LATENCY_8_MS
	LPF_LATENCY_16_MS
	LPF_LATENCY_32_MS
	LPF_LATENCY_RESERVED
)

var lowPassFilterLatencyEnum = regs.Sequential("LowPassFilterLatency",
	"Latency125us",
	"Latency1ms",
	"Latency2ms",
	"Latency4ms",
	"Latency8ms",
	"Latency16ms",
	"Latency32ms",
	"Reserved",
)

func (v LowPassFilterLatency) String() string { return lowPassFilterLatencyEnum.NameOf(uint8(v)) }

type UiFilterOrder uint8

const (
	UI_FILTER_FIRST_ORDER UiFilterOrder = iota
	UI_FILTER_SECOND_ORDER
	UI_FILTER_THIRD_ORDER
	UI_FILTER_RESERVED
)

var uiFilterOrderEnum = regs.Sequential("UiFilterOrder", "FirstOrder", "SecondOrder", "ThirdOrder", "Reserved")

func (v UiFilterOrder) String() string { return uiFilterOrderEnum.NameOf(uint8(v)) }

type Dec2M2FilterOrder uint8

const (
	DEC2_M2_THIRD_ORDER Dec2M2FilterOrder = 2
	DEC2_M2_RESERVED    Dec2M2FilterOrder = regs.CatchAllValue
)

var dec2M2FilterOrderEnum = regs.NewEnum("Dec2M2FilterOrder",
	regs.Other("Reserved"),
	regs.V("ThirdOrder", 2),
)

func (v Dec2M2FilterOrder) String() string { return dec2M2FilterOrderEnum.NameOf(uint8(v)) }

// APEX_CONFIG0

type DmpDataRate uint8

const (
	DMP_ODR_25_HZ    DmpDataRate = 0
	DMP_ODR_50_HZ    DmpDataRate = 2
	DMP_ODR_RESERVED DmpDataRate = regs.CatchAllValue
)

var dmpDataRateEnum = regs.NewEnum("DmpDataRate",
	regs.V("Hz25", 0),
	regs.Other("Reserved"),
	regs.V("Hz50", 2),
)

func (v DmpDataRate) String() string { return dmpDataRateEnum.NameOf(uint8(v)) }

// SMD_CONFIG

type SmdMode uint8

const (
	SMD_DISABLED SmdMode = iota
	SMD_WAKE_ON_MOTION
	SMD_SHORT
	SMD_LONG
)

var smdModeEnum = regs.Sequential("SmdMode", "Disabled", "WakeOnMotion", "Short", "Long")

func (v SmdMode) String() string { return smdModeEnum.NameOf(uint8(v)) }

// FSYNC_CONFIG

type FsyncFlag uint8

const (
	FSYNC_DISABLED FsyncFlag = iota
	FSYNC_TEMP
	FSYNC_GYRO_X
	FSYNC_GYRO_Y
	FSYNC_GYRO_Z
	FSYNC_ACCEL_X
	FSYNC_ACCEL_Y
	FSYNC_ACCEL_Z
)

var fsyncFlagEnum = regs.Sequential("FsyncFlag",
	"Disabled", "Temp", "GyroX", "GyroY", "GyroZ", "AccelX", "AccelY", "AccelZ")

func (v FsyncFlag) String() string { return fsyncFlagEnum.NameOf(uint8(v)) }

// INT_CONFIG0

type IntClearOption uint8

const (
	INT_CLEAR_ON_STATUS_READ IntClearOption = iota
	INT_CLEAR_RESERVED
	INT_CLEAR_ON_SENSOR_READ
	INT_CLEAR_ON_BOTH
)

var intClearOptionEnum = regs.Sequential("IntClearOption", "StatusBitRead", "Reserved", "SensorRegisterRead", "Both")

func (v IntClearOption) String() string { return intClearOptionEnum.NameOf(uint8(v)) }

// INTF_CONFIG5

type Pin9Function uint8

const (
	PIN9_INT2     Pin9Function = 0
	PIN9_FSYNC    Pin9Function = 1
	PIN9_RESERVED Pin9Function = regs.CatchAllValue
)

var pin9FunctionEnum = regs.NewEnum("Pin9Function",
	regs.V("Int2", 0),
	regs.V("FSync", 1),
	regs.Other("Reserved"),
)

func (v Pin9Function) String() string { return pin9FunctionEnum.NameOf(uint8(v)) }
