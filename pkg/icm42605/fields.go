package icm42605

import "github.com/mbalug7/go-icm42605/pkg/regs"

// Typed fields. Every enumeration field has one, plain fields only where the
// package or its users need them; the rest are reachable by name through
// regs.Value.GetByName.
var (
	DeviceConfigSoftReset = regs.NewBoolField(DEVICE_CONFIG, "soft_reset_config")

	IntConfigInt1Mode         = regs.NewBoolField(INT_CONFIG, "int1_mode")
	IntConfigInt1DriveCircuit = regs.NewBoolField(INT_CONFIG, "int1_drive_circuit")
	IntConfigInt1Polarity     = regs.NewBoolField(INT_CONFIG, "int1_polarity")

	FifoConfigFifoMode = regs.NewEnumField[FifoMode](FIFO_CONFIG, "fifo_mode")

	// SensorDataValue is the signed sample of TEMP_DATA and the six motion
	// data registers.
	SensorDataValue = regs.NewIntField(TEMP_DATA, "value")

	IntStatusDataReady = regs.NewBoolField(INT_STATUS, "data_rdy_int")
	IntStatusResetDone = regs.NewBoolField(INT_STATUS, "reset_done_int")

	FifoCountValue = regs.NewIntField(FIFO_COUNT, "value")

	ApexData0StepCount     = regs.NewUintField(APEX_DATA0, "step_cnt")
	ApexData3ActivityClass = regs.NewEnumField[ActivityClass](APEX_DATA3, "activity_class")
	ApexData4TapNum        = regs.NewEnumField[TapNum](APEX_DATA4, "tap_num")
	ApexData4TapAxis       = regs.NewEnumField[Axis](APEX_DATA4, "tap_axis")
	ApexData4TapDir        = regs.NewEnumField[Polarity](APEX_DATA4, "tap_dir")

	SignalPathResetFifoFlush = regs.NewBoolField(SIGNAL_PATH_RESET, "fifo_flush")

	IntfConfig0FifoCountRec     = regs.NewEnumField[FifoCountRec](INTF_CONFIG0, "fifo_count_rec")
	IntfConfig0FifoCountEndian  = regs.NewEnumField[Endian](INTF_CONFIG0, "fifo_count_endian")
	IntfConfig0SensorDataEndian = regs.NewEnumField[Endian](INTF_CONFIG0, "sensor_data_endian")
	IntfConfig0UiSifsCfg        = regs.NewEnumField[UiSifsCfg](INTF_CONFIG0, "ui_sifs_cfg")

	IntfConfig1AccelLpClkSel = regs.NewEnumField[AccelLpClkSel](INTF_CONFIG1, "accel_lp_clk_sel")
	IntfConfig1ClkSel        = regs.NewEnumField[ClkSel](INTF_CONFIG1, "clksel")

	PwrMgmt0TempDis   = regs.NewBoolField(PWR_MGMT0, "temp_dis")
	PwrMgmt0Idle      = regs.NewBoolField(PWR_MGMT0, "idle")
	PwrMgmt0GyroMode  = regs.NewEnumField[GyroMode](PWR_MGMT0, "gyro_mode")
	PwrMgmt0AccelMode = regs.NewEnumField[AccelMode](PWR_MGMT0, "accel_mode")

	GyroConfig0FullScale = regs.NewEnumField[GyroFullScale](GYRO_CONFIG0, "gyro_fs_sel")
	GyroConfig0DataRate  = regs.NewEnumField[DataRate](GYRO_CONFIG0, "gyro_odr")

	AccelConfig0FullScale = regs.NewEnumField[AccelFullScale](ACCEL_CONFIG0, "accel_fs_sel")
	AccelConfig0DataRate  = regs.NewEnumField[DataRate](ACCEL_CONFIG0, "accel_odr")

	GyroConfig1TempFiltBw     = regs.NewEnumField[LowPassFilterLatency](GYRO_CONFIG1, "temp_filt_bw")
	GyroConfig1UiFilterOrder  = regs.NewEnumField[UiFilterOrder](GYRO_CONFIG1, "gyro_ui_filt_ord")
	GyroConfig1Dec2M2Order    = regs.NewEnumField[Dec2M2FilterOrder](GYRO_CONFIG1, "gyro_dec2_m2_ord")
	AccelConfig1UiFilterOrder = regs.NewEnumField[UiFilterOrder](ACCEL_CONFIG1, "accel_ui_filt_ord")
	AccelConfig1Dec2M2Order   = regs.NewEnumField[Dec2M2FilterOrder](ACCEL_CONFIG1, "accel_dec2_m2_ord")

	ApexConfig0PedEnable = regs.NewBoolField(APEX_CONFIG0, "ped_enable")
	ApexConfig0TapEnable = regs.NewBoolField(APEX_CONFIG0, "tap_enable")
	ApexConfig0DmpOdr    = regs.NewEnumField[DmpDataRate](APEX_CONFIG0, "dmp_odr")

	SmdConfigSmdMode = regs.NewEnumField[SmdMode](SMD_CONFIG, "smd_mode")

	FifoConfig1AccelEn = regs.NewBoolField(FIFO_CONFIG1, "fifo_accel_en")
	FifoConfig1GyroEn  = regs.NewBoolField(FIFO_CONFIG1, "fifo_gyro_en")
	FifoConfig1TempEn  = regs.NewBoolField(FIFO_CONFIG1, "fifo_temp_en")
	FifoConfig2Wm      = regs.NewUintField(FIFO_CONFIG2, "fifo_wm")

	FsyncConfigUiSel = regs.NewEnumField[FsyncFlag](FSYNC_CONFIG, "fsync_ui_sel")

	IntConfig0DrdyClear     = regs.NewEnumField[IntClearOption](INT_CONFIG0, "ui_drdy_int_clear")
	IntConfig0FifoThsClear  = regs.NewEnumField[IntClearOption](INT_CONFIG0, "fifo_ths_int_clear")
	IntConfig0FifoFullClear = regs.NewEnumField[IntClearOption](INT_CONFIG0, "fifo_full_int_clear")

	IntConfig1AsyncReset = regs.NewBoolField(INT_CONFIG1, "int_async_reset")

	IntSource0DrdyInt1 = regs.NewBoolField(INT_SOURCE0, "ui_drdy_int1_en")

	WhoAmIValue = regs.NewUintField(WHO_AM_I, "whoami")

	IntfConfig5Pin9Function = regs.NewEnumField[Pin9Function](INTF_CONFIG5, "pin9_function")

	AccelWomThreshold = regs.NewUintField(ACCEL_WOM_X_THR, "wom_th")
)
