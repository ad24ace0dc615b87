package icm42605

import (
	"github.com/mbalug7/go-icm42605/pkg/hal"
	"github.com/mbalug7/go-icm42605/pkg/regs"
)

// User banks of the register file.
const (
	BANK0 uint8 = 0
	BANK1 uint8 = 1
	BANK2 uint8 = 2
	BANK4 uint8 = 4
)

func addr(bank uint8, offset uint8) hal.RegAddress {
	return hal.NewRegAddress(bank, offset)
}

func reg8(name string, a hal.RegAddress, reset uint32, fields ...*regs.Field) *regs.Register {
	return regs.MustDefine(&regs.Register{Name: name, Address: a, SizeBits: 8, Reset: reset, Fields: fields})
}

func ro8(name string, a hal.RegAddress, reset uint32, fields ...*regs.Field) *regs.Register {
	return regs.MustDefine(&regs.Register{Name: name, Address: a, SizeBits: 8, Access: regs.ReadOnly, Reset: reset, Fields: fields})
}

func ro16(name string, a hal.RegAddress, order regs.ByteOrder, reset uint32, fields ...*regs.Field) *regs.Register {
	return regs.MustDefine(&regs.Register{Name: name, Address: a, SizeBits: 16, Access: regs.ReadOnly, Order: order, Reset: reset, Fields: fields})
}

// USER BANK 0

var (
	DEVICE_CONFIG = reg8("DEVICE_CONFIG", addr(BANK0, 0x11), 0x00,
		regs.Bool("spi_mode", 4),
		regs.Bool("soft_reset_config", 0),
	)

	DRIVE_CONFIG = reg8("DRIVE_CONFIG", addr(BANK0, 0x13), 0x05,
		regs.Uint("i2c_slew_rate", 3, 6),
		regs.Uint("spi_slew_rate", 0, 3),
	)

	INT_CONFIG = reg8("INT_CONFIG", addr(BANK0, 0x14), 0x00,
		regs.Bool("int2_mode", 5),
		regs.Bool("int2_drive_circuit", 4),
		regs.Bool("int2_polarity", 3),
		regs.Bool("int1_mode", 2),
		regs.Bool("int1_drive_circuit", 1),
		regs.Bool("int1_polarity", 0),
	)

	FIFO_CONFIG = reg8("FIFO_CONFIG", addr(BANK0, 0x16), 0x00,
		regs.EnumOf("fifo_mode", fifoModeEnum, 6, 8),
	)

	// TEMP_DATA is also the layout of the six motion data registers.
	TEMP_DATA = ro16("TEMP_DATA", addr(BANK0, 0x1d), regs.BigEndian, 0x8000,
		regs.Int("value", 0, 16),
	)

	ACCEL_DATA_X = TEMP_DATA.Ref("ACCEL_DATA_X", addr(BANK0, 0x1f))
	ACCEL_DATA_Y = TEMP_DATA.Ref("ACCEL_DATA_Y", addr(BANK0, 0x21))
	ACCEL_DATA_Z = TEMP_DATA.Ref("ACCEL_DATA_Z", addr(BANK0, 0x23))
	GYRO_DATA_X  = TEMP_DATA.Ref("GYRO_DATA_X", addr(BANK0, 0x25))
	GYRO_DATA_Y  = TEMP_DATA.Ref("GYRO_DATA_Y", addr(BANK0, 0x27))
	GYRO_DATA_Z  = TEMP_DATA.Ref("GYRO_DATA_Z", addr(BANK0, 0x29))

	TMST_FSYNC = ro16("TMST_FSYNC", addr(BANK0, 0x2b), regs.BigEndian, 0x0000,
		regs.Int("value", 0, 16),
	)

	INT_STATUS = ro8("INT_STATUS", addr(BANK0, 0x2d), 0x00,
		regs.Bool("ui_fsync_int", 6),
		regs.Bool("pll_rdy_int", 5),
		regs.Bool("reset_done_int", 4),
		regs.Bool("data_rdy_int", 3),
		regs.Bool("fifo_ths_int", 2),
		regs.Bool("fifo_full_int", 1),
		regs.Bool("agc_rdy_int", 0),
	)

	FIFO_COUNT = ro16("FIFO_COUNT", addr(BANK0, 0x2e), regs.BigEndian, 0x0000,
		regs.Int("value", 0, 16),
	)

	FIFO_DATA = ro8("FIFO_DATA", addr(BANK0, 0x30), 0xff,
		regs.Int("value", 0, 8),
	)

	APEX_DATA0 = ro16("APEX_DATA0", addr(BANK0, 0x31), regs.LittleEndian, 0x0000,
		regs.Uint("step_cnt", 0, 16),
	)

	APEX_DATA2 = ro8("APEX_DATA2", addr(BANK0, 0x33), 0x00,
		regs.Uint("step_cadence", 0, 8),
	)

	APEX_DATA3 = ro8("APEX_DATA3", addr(BANK0, 0x34), 0x04,
		regs.Bool("dmp_idle", 2),
		regs.EnumOf("activity_class", activityClassEnum, 0, 2),
	)

	APEX_DATA4 = ro8("APEX_DATA4", addr(BANK0, 0x35), 0x00,
		regs.EnumOf("tap_num", tapNumEnum, 3, 5),
		regs.EnumOf("tap_axis", axisEnum, 1, 3),
		regs.EnumOf("tap_dir", polarityEnum, 0, 1),
	)

	APEX_DATA5 = ro8("APEX_DATA5", addr(BANK0, 0x36), 0x00,
		regs.Uint("double_tap_timing", 0, 6),
	)

	INT_STATUS2 = ro8("INT_STATUS2", addr(BANK0, 0x37), 0x00,
		regs.Bool("smd_int", 3),
		regs.Bool("wom_z_int", 2),
		regs.Bool("wom_y_int", 1),
		regs.Bool("wom_x_int", 0),
	)

	INT_STATUS3 = ro8("INT_STATUS3", addr(BANK0, 0x38), 0x00,
		regs.Bool("step_det_int", 5),
		regs.Bool("step_cnt_ovf_int", 4),
		regs.Bool("tilt_det_int", 3),
		regs.Bool("wake_int", 2),
		regs.Bool("sleep_int", 1),
		regs.Bool("tap_det_int", 0),
	)

	SIGNAL_PATH_RESET = regs.MustDefine(&regs.Register{
		Name:     "SIGNAL_PATH_RESET",
		Address:  addr(BANK0, 0x4b),
		SizeBits: 8,
		Access:   regs.WriteOnly,
		Fields: []*regs.Field{
			regs.Bool("dmp_init_en", 6),
			regs.Bool("dmp_mem_reset_en", 5),
			regs.Bool("abort_and_reset", 3),
			regs.Bool("tmst_strobe", 2),
			regs.Bool("fifo_flush", 1),
		},
	})

	INTF_CONFIG0 = reg8("INTF_CONFIG0", addr(BANK0, 0x4c), 0x30,
		regs.Bool("fifo_hold_last_data_en", 7),
		regs.EnumOf("fifo_count_rec", fifoCountRecEnum, 6, 7),
		regs.EnumOf("fifo_count_endian", endianEnum, 5, 6),
		regs.EnumOf("sensor_data_endian", endianEnum, 4, 5),
		regs.EnumOf("ui_sifs_cfg", uiSifsCfgEnum, 0, 2),
	)

	INTF_CONFIG1 = reg8("INTF_CONFIG1", addr(BANK0, 0x4d), 0x91,
		regs.EnumOf("accel_lp_clk_sel", accelLpClkSelEnum, 3, 4),
		regs.EnumOf("clksel", clkSelEnum, 0, 2),
	)

	PWR_MGMT0 = reg8("PWR_MGMT0", addr(BANK0, 0x4e), 0x00,
		regs.Bool("temp_dis", 5),
		regs.Bool("idle", 4),
		regs.EnumOf("gyro_mode", gyroModeEnum, 2, 4),
		regs.EnumOf("accel_mode", accelModeEnum, 0, 2),
	)

	GYRO_CONFIG0 = reg8("GYRO_CONFIG0", addr(BANK0, 0x4f), 0x06,
		regs.EnumOf("gyro_fs_sel", gyroFullScaleEnum, 5, 8),
		regs.EnumOf("gyro_odr", dataRateEnum, 0, 4),
	)

	ACCEL_CONFIG0 = reg8("ACCEL_CONFIG0", addr(BANK0, 0x50), 0x06,
		regs.EnumOf("accel_fs_sel", accelFullScaleEnum, 5, 8),
		regs.EnumOf("accel_odr", dataRateEnum, 0, 4),
	)

	GYRO_CONFIG1 = reg8("GYRO_CONFIG1", addr(BANK0, 0x51), 0x16,
		regs.EnumOf("temp_filt_bw", lowPassFilterLatencyEnum, 5, 8),
		regs.EnumOf("gyro_ui_filt_ord", uiFilterOrderEnum, 2, 4),
		regs.EnumOf("gyro_dec2_m2_ord", dec2M2FilterOrderEnum, 0, 2),
	)

	GYRO_ACCEL_CONFIG0 = reg8("GYRO_ACCEL_CONFIG0", addr(BANK0, 0x52), 0x11,
		regs.Uint("accel_ui_filt_bw", 4, 8),
		regs.Uint("gyro_ui_filt_bw", 0, 4),
	)

	ACCEL_CONFIG1 = reg8("ACCEL_CONFIG1", addr(BANK0, 0x53), 0x0d,
		regs.EnumOf("accel_ui_filt_ord", uiFilterOrderEnum, 3, 5),
		regs.EnumOf("accel_dec2_m2_ord", dec2M2FilterOrderEnum, 1, 3),
	)

	TMST_CONFIG = reg8("TMST_CONFIG", addr(BANK0, 0x54), 0x23,
		regs.Bool("tmst_to_regs_en", 4),
		regs.Bool("tmst_res", 3),
		regs.Bool("tmst_delta_en", 2),
		regs.Bool("tmst_fsync_en", 1),
		regs.Bool("tmst_en", 0),
	)

	APEX_CONFIG0 = reg8("APEX_CONFIG0", addr(BANK0, 0x56), 0x82,
		regs.Bool("dmp_power_save", 7),
		regs.Bool("tap_enable", 6),
		regs.Bool("ped_enable", 5),
		regs.Bool("tilt_enable", 4),
		regs.Bool("r2w_en", 3),
		regs.EnumOf("dmp_odr", dmpDataRateEnum, 0, 2),
	)

	SMD_CONFIG = reg8("SMD_CONFIG", addr(BANK0, 0x57), 0x00,
		regs.Bool("wom_int_mode", 3),
		regs.Bool("wom_mode", 2),
		regs.EnumOf("smd_mode", smdModeEnum, 0, 2),
	)

	FIFO_CONFIG1 = reg8("FIFO_CONFIG1", addr(BANK0, 0x5f), 0x00,
		regs.Bool("fifo_resume_partial_rd", 6),
		regs.Bool("fifo_wm_gt_th", 5),
		regs.Bool("fifo_tmst_fsync_en", 3),
		regs.Bool("fifo_temp_en", 2),
		regs.Bool("fifo_gyro_en", 1),
		regs.Bool("fifo_accel_en", 0),
	)

	FIFO_CONFIG2 = regs.MustDefine(&regs.Register{
		Name:     "FIFO_CONFIG2",
		Address:  addr(BANK0, 0x60),
		SizeBits: 16,
		Order:    regs.LittleEndian,
		Fields: []*regs.Field{
			regs.Uint("fifo_wm", 0, 12),
		},
	})

	FSYNC_CONFIG = reg8("FSYNC_CONFIG", addr(BANK0, 0x62), 0x10,
		regs.EnumOf("fsync_ui_sel", fsyncFlagEnum, 4, 7),
		regs.Bool("fsync_ui_flag_clear_sel", 1),
		regs.Bool("fsync_polarity", 0),
	)

	INT_CONFIG0 = reg8("INT_CONFIG0", addr(BANK0, 0x63), 0x00,
		regs.EnumOf("ui_drdy_int_clear", intClearOptionEnum, 4, 6),
		regs.EnumOf("fifo_ths_int_clear", intClearOptionEnum, 2, 4),
		regs.EnumOf("fifo_full_int_clear", intClearOptionEnum, 0, 2),
	)

	INT_CONFIG1 = reg8("INT_CONFIG1", addr(BANK0, 0x64), 0x10,
		regs.Bool("int_tpulse_duration", 6),
		regs.Bool("int_tdeassert_disable", 5),
		regs.Bool("int_async_reset", 4),
	)

	INT_SOURCE0 = reg8("INT_SOURCE0", addr(BANK0, 0x65), 0x10,
		regs.Bool("ui_fsync_int1_en", 6),
		regs.Bool("pll_rdy_int1_en", 5),
		regs.Bool("reset_done_int1_en", 4),
		regs.Bool("ui_drdy_int1_en", 3),
		regs.Bool("fifo_ths_int1_en", 2),
		regs.Bool("fifo_full_int1_en", 1),
		regs.Bool("ui_agc_rdy_int1_en", 0),
	)

	INT_SOURCE1 = reg8("INT_SOURCE1", addr(BANK0, 0x66), 0x00,
		regs.Bool("i3c_protocol_error_int1_en", 6),
		regs.Bool("smd_int1_en", 3),
		regs.Bool("wom_z_int1_en", 2),
		regs.Bool("wom_y_int1_en", 1),
		regs.Bool("wom_x_int1_en", 0),
	)

	INT_SOURCE3 = reg8("INT_SOURCE3", addr(BANK0, 0x68), 0x00,
		regs.Bool("ui_fsync_int2_en", 6),
		regs.Bool("pll_rdy_int2_en", 5),
		regs.Bool("reset_done_int2_en", 4),
		regs.Bool("ui_drdy_int2_en", 3),
		regs.Bool("fifo_ths_int2_en", 2),
		regs.Bool("fifo_full_int2_en", 1),
		regs.Bool("ui_agc_rdy_int2_en", 0),
	)

	INT_SOURCE4 = reg8("INT_SOURCE4", addr(BANK0, 0x69), 0x00,
		regs.Bool("i3c_protocol_error_int2_en", 6),
		regs.Bool("smd_int2_en", 3),
		regs.Bool("wom_z_int2_en", 2),
		regs.Bool("wom_y_int2_en", 1),
		regs.Bool("wom_x_int2_en", 0),
	)

	FIFO_LOST_PKT0 = ro16("FIFO_LOST_PKT0", addr(BANK0, 0x6c), regs.LittleEndian, 0x0000,
		regs.Uint("fifo_lost_pkt_cnt", 0, 16),
	)

	SELF_TEST_CONFIG = reg8("SELF_TEST_CONFIG", addr(BANK0, 0x70), 0x00,
		regs.Bool("accel_st_power", 6),
		regs.Bool("en_az_st", 5),
		regs.Bool("en_ay_st", 4),
		regs.Bool("en_ax_st", 3),
		regs.Bool("en_gz_st", 2),
		regs.Bool("en_gy_st", 1),
		regs.Bool("en_gx_st", 0),
	)

	WHO_AM_I = ro8("WHO_AM_I", addr(BANK0, 0x75), 0x42,
		regs.Uint("whoami", 0, 8),
	)
)

// USER BANK 1

var (
	SENSOR_CONFIG0 = reg8("SENSOR_CONFIG0", addr(BANK1, 0x03), 0x00,
		regs.Bool("zg_disable", 5),
		regs.Bool("yg_disable", 4),
		regs.Bool("xg_disable", 3),
		regs.Bool("za_disable", 2),
		regs.Bool("ya_disable", 1),
		regs.Bool("xa_disable", 0),
	)

	GYRO_CONFIG_STATIC2 = reg8("GYRO_CONFIG_STATIC2", addr(BANK1, 0x0b), 0xa8,
		regs.Bool("gyro_aaf_dis", 1),
		regs.Bool("gyro_nf_dis", 0),
	)

	// GYRO_CONFIG_STATIC3 spans three registers. It is wider than a single
	// register write may be, so it can be read but not written as a whole.
	GYRO_CONFIG_STATIC3 = regs.MustDefine(&regs.Register{
		Name:     "GYRO_CONFIG_STATIC3",
		Address:  addr(BANK1, 0x0c),
		SizeBits: 24,
		Order:    regs.LittleEndian,
		Reset:    0x3f,
		Fields: []*regs.Field{
			regs.Uint("gyro_aaf_delt", 0, 6),
			regs.Uint("gyro_aaf_deltsqr", 8, 20),
			regs.Uint("gyro_aaf_bitshift", 20, 24),
		},
	})

	// GYRO_CONFIG_STATIC6 is also the layout of the self-test data registers.
	GYRO_CONFIG_STATIC6 = reg8("GYRO_CONFIG_STATIC6", addr(BANK1, 0x0f), 0x00,
		regs.Uint("value", 0, 8),
	)

	GYRO_CONFIG_STATIC7 = GYRO_CONFIG_STATIC6.Ref("GYRO_CONFIG_STATIC7", addr(BANK1, 0x10))
	GYRO_CONFIG_STATIC8 = GYRO_CONFIG_STATIC6.Ref("GYRO_CONFIG_STATIC8", addr(BANK1, 0x11))

	GYRO_CONFIG_STATIC9 = reg8("GYRO_CONFIG_STATIC9", addr(BANK1, 0x12), 0x00,
		regs.Bool("gyro_z_nf_coswz_sel", 5),
		regs.Bool("gyro_y_nf_coswz_sel", 4),
		regs.Bool("gyro_x_nf_coswz_sel", 3),
		regs.Bool("gyro_z_nf_coswz", 2),
		regs.Bool("gyro_y_nf_coswz", 1),
		regs.Bool("gyro_x_nf_coswz", 0),
	)

	GYRO_CONFIG_STATIC10 = reg8("GYRO_CONFIG_STATIC10", addr(BANK1, 0x13), 0x11,
		regs.Uint("gyro_nf_bw_sel", 4, 7),
	)

	XG_ST_DATA = GYRO_CONFIG_STATIC6.Ref("XG_ST_DATA", addr(BANK1, 0x5f))
	YG_ST_DATA = GYRO_CONFIG_STATIC6.Ref("YG_ST_DATA", addr(BANK1, 0x60))
	ZG_ST_DATA = GYRO_CONFIG_STATIC6.Ref("ZG_ST_DATA", addr(BANK1, 0x61))

	TMSTVAL = regs.MustDefine(&regs.Register{
		Name:     "TMSTVAL",
		Address:  addr(BANK1, 0x62),
		SizeBits: 24,
		Order:    regs.LittleEndian,
		Fields: []*regs.Field{
			regs.Uint("tmst_value", 0, 20),
		},
	})

	INTF_CONFIG4 = reg8("INTF_CONFIG4", addr(BANK1, 0x7a), 0x03,
		regs.Bool("i3c_bus_mode", 6),
		regs.Bool("spi_ap_4wire", 1),
	)

	INTF_CONFIG5 = reg8("INTF_CONFIG5", addr(BANK1, 0x7b), 0x20,
		regs.EnumOf("pin9_function", pin9FunctionEnum, 1, 3),
	)

	INTF_CONFIG6 = reg8("INTF_CONFIG6", addr(BANK1, 0x7c), 0x5f,
		regs.Bool("asynctime0_dis", 7),
		regs.Bool("i3c_en", 4),
		regs.Bool("i3c_ibi_byte_en", 3),
		regs.Bool("i3c_ibi_en", 2),
		regs.Bool("i3c_ddr_en", 1),
		regs.Bool("i3c_sdr_en", 0),
	)
)

// USER BANK 2

var (
	ACCEL_CONFIG_STATIC2 = regs.MustDefine(&regs.Register{
		Name:     "ACCEL_CONFIG_STATIC2",
		Address:  addr(BANK2, 0x0c),
		SizeBits: 24,
		Order:    regs.LittleEndian,
		Reset:    0x3f,
		Fields: []*regs.Field{
			regs.Bool("accel_aaf_dis", 0),
			regs.Uint("accel_aaf_delt", 1, 7),
			regs.Uint("accel_aaf_deltsqr", 8, 20),
			regs.Uint("accel_aaf_bitshift", 20, 24),
		},
	})

	XA_ST_DATA = GYRO_CONFIG_STATIC6.Ref("XA_ST_DATA", addr(BANK2, 0x3b))
	YA_ST_DATA = GYRO_CONFIG_STATIC6.Ref("YA_ST_DATA", addr(BANK2, 0x3c))
	ZA_ST_DATA = GYRO_CONFIG_STATIC6.Ref("ZA_ST_DATA", addr(BANK2, 0x3d))
)

// USER BANK 4

var (
	APEX_CONFIG1 = reg8("APEX_CONFIG1", addr(BANK4, 0x40), 0xa2,
		regs.Uint("low_energy_amp_th_sel", 4, 8),
		regs.Uint("dmp_power_save_time_sel", 0, 4),
	)

	APEX_CONFIG2 = reg8("APEX_CONFIG2", addr(BANK4, 0x41), 0x85,
		regs.Uint("ped_amp_th_sel", 4, 8),
		regs.Uint("ped_step_cnt_th_sel", 0, 4),
	)

	APEX_CONFIG3 = reg8("APEX_CONFIG3", addr(BANK4, 0x42), 0x51,
		regs.Uint("ped_step_det_th_sel", 5, 8),
		regs.Uint("ped_sb_timer_th_sel", 2, 5),
		regs.Uint("ped_hi_en_th_sel", 0, 2),
	)

	APEX_CONFIG4 = reg8("APEX_CONFIG4", addr(BANK4, 0x43), 0xa4,
		regs.Uint("tilt_wait_time_sel", 6, 8),
		regs.Uint("sleep_time_out", 3, 6),
	)

	APEX_CONFIG5 = reg8("APEX_CONFIG5", addr(BANK4, 0x44), 0x8c,
		regs.Uint("mounting_matrix", 0, 3),
	)

	APEX_CONFIG6 = reg8("APEX_CONFIG6", addr(BANK4, 0x45), 0x5c,
		regs.Uint("sleep_gesture_delay", 0, 3),
	)

	APEX_CONFIG7 = reg8("APEX_CONFIG7", addr(BANK4, 0x47), 0x5b,
		regs.Uint("tap_tmax", 5, 7),
		regs.Uint("tap_tavg", 3, 5),
		regs.Uint("tap_tmin", 0, 3),
	)

	APEX_CONFIG8 = reg8("APEX_CONFIG8", addr(BANK4, 0x48), 0x00,
		regs.Bool("sensitivity_mode", 0),
	)

	ACCEL_WOM_X_THR = reg8("ACCEL_WOM_X_THR", addr(BANK4, 0x4a), 0x00,
		regs.Uint("wom_th", 0, 8),
	)

	ACCEL_WOM_Y_THR = ACCEL_WOM_X_THR.Ref("ACCEL_WOM_Y_THR", addr(BANK4, 0x4b))
	ACCEL_WOM_Z_THR = ACCEL_WOM_X_THR.Ref("ACCEL_WOM_Z_THR", addr(BANK4, 0x4c))

	INT_SOURCE6 = reg8("INT_SOURCE6", addr(BANK4, 0x4d), 0x00,
		regs.Bool("step_det_int1_en", 5),
		regs.Bool("step_cnt_ofl_int1_en", 4),
		regs.Bool("tilt_det_int1_en", 3),
		regs.Bool("wake_det_int1_en", 2),
		regs.Bool("sleep_det_int1_en", 1),
		regs.Bool("tap_det_int1_en", 0),
	)

	INT_SOURCE7 = reg8("INT_SOURCE7", addr(BANK4, 0x4e), 0x00,
		regs.Bool("step_det_int2_en", 5),
		regs.Bool("step_cnt_ofl_int2_en", 4),
		regs.Bool("tilt_det_int2_en", 3),
		regs.Bool("wake_det_int2_en", 2),
		regs.Bool("sleep_det_int2_en", 1),
		regs.Bool("tap_det_int2_en", 0),
	)

	INT_SOURCE8 = reg8("INT_SOURCE8", addr(BANK4, 0x4f), 0x00,
		regs.Bool("fsync_ibi_en", 6),
		regs.Bool("pll_rdy_ibi_en", 5),
		regs.Bool("reset_done_ibi_en", 4),
		regs.Bool("ui_drdy_ibi_en", 3),
		regs.Bool("fifo_ths_ibi_en", 2),
		regs.Bool("fifo_full_ibi_en", 1),
		regs.Bool("ui_agc_rdy_ibi_en", 0),
	)

	INT_SOURCE9 = reg8("INT_SOURCE9", addr(BANK4, 0x50), 0x00,
		regs.Bool("i3c_protocol_error_ibi_en", 7),
		regs.Bool("smd_ibi_en", 4),
		regs.Bool("wom_z_ibi_en", 3),
		regs.Bool("wom_y_ibi_en", 2),
		regs.Bool("wom_x_ibi_en", 1),
	)

	INT_SOURCE10 = reg8("INT_SOURCE10", addr(BANK4, 0x51), 0x00,
		regs.Bool("step_det_ibi_en", 5),
		regs.Bool("step_cnt_ofl_ibi_en", 4),
		regs.Bool("tilt_det_ibi_en", 3),
		regs.Bool("wake_det_ibi_en", 2),
		regs.Bool("sleep_det_ibi_en", 1),
		regs.Bool("tap_det_ibi_en", 0),
	)

	OFFSET_USER0 = reg8("OFFSET_USER0", addr(BANK4, 0x77), 0x00,
		regs.Uint("gyro_x_offuser_lo", 0, 8),
	)

	OFFSET_USER1 = reg8("OFFSET_USER1", addr(BANK4, 0x78), 0x00,
		regs.Uint("gyro_y_offuser_hi", 4, 8),
		regs.Uint("gyro_x_offuser_hi", 0, 4),
	)

	OFFSET_USER2 = reg8("OFFSET_USER2", addr(BANK4, 0x79), 0x00,
		regs.Uint("gyro_y_offuser_lo", 0, 8),
	)

	OFFSET_USER3 = reg8("OFFSET_USER3", addr(BANK4, 0x7a), 0x00,
		regs.Uint("gyro_z_offuser_lo", 0, 8),
	)

	OFFSET_USER4 = reg8("OFFSET_USER4", addr(BANK4, 0x7b), 0x00,
		regs.Uint("accel_x_offuser_hi", 4, 8),
		regs.Uint("gyro_z_offuser_hi", 0, 4),
	)

	OFFSET_USER5 = reg8("OFFSET_USER5", addr(BANK4, 0x7c), 0x00,
		regs.Uint("accel_x_offuser_lo", 0, 8),
	)

	OFFSET_USER6 = reg8("OFFSET_USER6", addr(BANK4, 0x7d), 0x00,
		regs.Uint("accel_y_offuser_lo", 0, 8),
	)

	OFFSET_USER7 = reg8("OFFSET_USER7", addr(BANK4, 0x7e), 0x00,
		regs.Uint("accel_z_offuser_hi", 4, 8),
		regs.Uint("accel_y_offuser_hi", 0, 4),
	)

	OFFSET_USER8 = reg8("OFFSET_USER8", addr(BANK4, 0x7f), 0x00,
		regs.Uint("accel_z_offuser_lo", 0, 8),
	)
)

// Registers indexes the whole register file.
var Registers = regs.MustMap(
	DEVICE_CONFIG, DRIVE_CONFIG, INT_CONFIG, FIFO_CONFIG,
	TEMP_DATA, ACCEL_DATA_X, ACCEL_DATA_Y, ACCEL_DATA_Z, GYRO_DATA_X, GYRO_DATA_Y, GYRO_DATA_Z,
	TMST_FSYNC, INT_STATUS, FIFO_COUNT, FIFO_DATA,
	APEX_DATA0, APEX_DATA2, APEX_DATA3, APEX_DATA4, APEX_DATA5,
	INT_STATUS2, INT_STATUS3, SIGNAL_PATH_RESET, INTF_CONFIG0, INTF_CONFIG1, PWR_MGMT0,
	GYRO_CONFIG0, ACCEL_CONFIG0, GYRO_CONFIG1, GYRO_ACCEL_CONFIG0, ACCEL_CONFIG1, TMST_CONFIG,
	APEX_CONFIG0, SMD_CONFIG, FIFO_CONFIG1, FIFO_CONFIG2, FSYNC_CONFIG, INT_CONFIG0, INT_CONFIG1,
	INT_SOURCE0, INT_SOURCE1, INT_SOURCE3, INT_SOURCE4, FIFO_LOST_PKT0, SELF_TEST_CONFIG, WHO_AM_I,

	SENSOR_CONFIG0, GYRO_CONFIG_STATIC2, GYRO_CONFIG_STATIC3,
	GYRO_CONFIG_STATIC6, GYRO_CONFIG_STATIC7, GYRO_CONFIG_STATIC8, GYRO_CONFIG_STATIC9, GYRO_CONFIG_STATIC10,
	XG_ST_DATA, YG_ST_DATA, ZG_ST_DATA, TMSTVAL, INTF_CONFIG4, INTF_CONFIG5, INTF_CONFIG6,

	ACCEL_CONFIG_STATIC2, XA_ST_DATA, YA_ST_DATA, ZA_ST_DATA,

	APEX_CONFIG1, APEX_CONFIG2, APEX_CONFIG3, APEX_CONFIG4, APEX_CONFIG5, APEX_CONFIG6, APEX_CONFIG7, APEX_CONFIG8,
	ACCEL_WOM_X_THR, ACCEL_WOM_Y_THR, ACCEL_WOM_Z_THR,
	INT_SOURCE6, INT_SOURCE7, INT_SOURCE8, INT_SOURCE9, INT_SOURCE10,
	OFFSET_USER0, OFFSET_USER1, OFFSET_USER2, OFFSET_USER3, OFFSET_USER4,
	OFFSET_USER5, OFFSET_USER6, OFFSET_USER7, OFFSET_USER8,
)
